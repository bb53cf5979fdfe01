package asset

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tidwall/gjson"

	"motion-controller-rig/internal/scene"
)

// ErrNoNodes is returned for a model without any nodes.
var ErrNoNodes = errors.New("asset: model has no nodes")

const (
	glbMagic     = 0x46546C67 // "glTF"
	glbChunkJSON = 0x4E4F534A // "JSON"
)

// ParseModel accepts either a binary .glb container or glTF JSON.
func ParseModel(data []byte, graph scene.Graph) ([]scene.Node, error) {
	if len(data) >= 4 && binary.LittleEndian.Uint32(data) == glbMagic {
		js, err := glbJSONChunk(data)
		if err != nil {
			return nil, err
		}
		data = js
	}
	return ParseGLTF(data, graph)
}

// glbJSONChunk returns the first chunk of a GLB container, which the format
// requires to be JSON.
func glbJSONChunk(data []byte) ([]byte, error) {
	if len(data) < 20 {
		return nil, fmt.Errorf("asset: truncated glb header")
	}
	if v := binary.LittleEndian.Uint32(data[4:8]); v != 2 {
		return nil, fmt.Errorf("asset: unsupported glb version %d", v)
	}
	size := int(binary.LittleEndian.Uint32(data[12:16]))
	if binary.LittleEndian.Uint32(data[16:20]) != glbChunkJSON {
		return nil, fmt.Errorf("asset: glb first chunk is not JSON")
	}
	if 20+size > len(data) {
		return nil, fmt.Errorf("asset: truncated glb JSON chunk")
	}
	return data[20 : 20+size], nil
}

// ParseGLTF creates one scene node per glTF node, copies its local
// translation and rotation and links children to parents. The returned
// slice is in glTF node order.
func ParseGLTF(data []byte, graph scene.Graph) ([]scene.Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("asset: invalid glTF JSON")
	}
	raw := gjson.GetBytes(data, "nodes").Array()
	if len(raw) == 0 {
		return nil, ErrNoNodes
	}

	nodes := make([]scene.Node, len(raw))
	for i, r := range raw {
		n := graph.NewNode(r.Get("name").String())
		if m := r.Get("matrix").Array(); len(m) == 16 {
			var mat mgl64.Mat4
			for k := range mat {
				mat[k] = m[k].Float()
			}
			n.SetPosition(mat.Col(3).Vec3())
			n.SetOrientation(mgl64.Mat4ToQuat(mat).Normalize())
		}
		if t := r.Get("translation").Array(); len(t) == 3 {
			n.SetPosition(mgl64.Vec3{t[0].Float(), t[1].Float(), t[2].Float()})
		}
		if q := r.Get("rotation").Array(); len(q) == 4 {
			// glTF stores quaternions as x, y, z, w.
			n.SetOrientation(mgl64.Quat{
				W: q[3].Float(),
				V: mgl64.Vec3{q[0].Float(), q[1].Float(), q[2].Float()},
			})
		}
		nodes[i] = n
	}

	parent := make([]int, len(raw))
	for i := range parent {
		parent[i] = -1
	}
	for i, r := range raw {
		for _, c := range r.Get("children").Array() {
			ci := int(c.Int())
			if ci < 0 || ci >= len(nodes) || ci == i {
				return nil, fmt.Errorf("asset: node %d: bad child index %d", i, ci)
			}
			if parent[ci] >= 0 {
				return nil, fmt.Errorf("asset: node %d has more than one parent", ci)
			}
			parent[ci] = i
		}
	}

	// With single parents, a chain longer than the node count loops.
	for i := range parent {
		steps := 0
		for p := parent[i]; p >= 0; p = parent[p] {
			if steps++; steps > len(parent) {
				return nil, fmt.Errorf("asset: node %d: cycle", i)
			}
		}
	}

	for i, r := range raw {
		for _, c := range r.Get("children").Array() {
			nodes[c.Int()].SetParent(nodes[i])
		}
	}
	return nodes, nil
}
