// Package asset loads glTF/GLB meshes into raster.PolygonBuffer values
// and decodes their textures into surface.Texture instances.
package asset

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/qmuntal/gltf"

	"github.com/carrilhoac/nanogl/pkg/math3d"
	"github.com/carrilhoac/nanogl/pkg/raster"
	"github.com/carrilhoac/nanogl/pkg/surface"
)

// ColorConverter packs a decoded RGBA texel into the pixel element
// type the rest of the pipeline is rendering with.
type ColorConverter[T surface.PixelElement] func(r, g, b, a uint8) T

// LoadGLTF loads every triangle primitive in a glTF or GLB file into a
// single raster.PolygonBuffer, one texture per primitive (a solid
// white 1x1 texture when the primitive has no base color image).
func LoadGLTF[T surface.PixelElement](path string, convert ColorConverter[T]) (*raster.PolygonBuffer[T], error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	buf := &raster.PolygonBuffer[T]{}

	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}

			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := readVec3Accessor(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("read positions: %w", err)
			}

			var uvs []math3d.Vector2
			if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
				uvs, err = readVec2Accessor(doc, uvIdx)
				if err != nil {
					return nil, fmt.Errorf("read uvs: %w", err)
				}
			}

			var indices []int
			if prim.Indices != nil {
				indices, err = readIndices(doc, *prim.Indices)
				if err != nil {
					return nil, fmt.Errorf("read indices: %w", err)
				}
			} else {
				indices = make([]int, len(positions))
				for i := range indices {
					indices[i] = i
				}
			}

			tex, err := primitiveTexture(doc, prim, convert)
			if err != nil {
				return nil, fmt.Errorf("load texture: %w", err)
			}

			vertexUV := func(i int) math3d.Vector2 {
				if i < len(uvs) {
					// glTF UV origin is top-left; flip V to match the
					// pipeline's bottom-left texture row convention.
					return math3d.V2(uvs[i].X, 1-uvs[i].Y)
				}
				return math3d.Vector2{}
			}

			// glTF specifies CCW front faces; reverse winding order
			// (swap the last two indices) for this pipeline's CW
			// convention.
			for i := 0; i+2 < len(indices); i += 3 {
				a, b, c := indices[i], indices[i+2], indices[i+1]
				p := raster.Polygon[T]{Tex: tex}
				p.Verts[0].Model = positions[a]
				p.Verts[1].Model = positions[b]
				p.Verts[2].Model = positions[c]
				p.Verts[0].Texture = vertexUV(a)
				p.Verts[1].Texture = vertexUV(b)
				p.Verts[2].Texture = vertexUV(c)
				buf.Polys = append(buf.Polys, p)
			}
		}
	}

	return buf, nil
}

func primitiveTexture[T surface.PixelElement](doc *gltf.Document, prim *gltf.Primitive, convert ColorConverter[T]) (surface.Texture[T], error) {
	white := surface.NewMemorySurface[T](1, 1)
	white.Fill(convert(255, 255, 255, 255))

	if prim.Material == nil {
		return white, nil
	}
	mat := doc.Materials[*prim.Material]
	if mat.PBRMetallicRoughness == nil || mat.PBRMetallicRoughness.BaseColorTexture == nil {
		return white, nil
	}

	texIdx := mat.PBRMetallicRoughness.BaseColorTexture.Index
	texInfo := doc.Textures[texIdx]
	if texInfo.Source == nil {
		return white, nil
	}
	img := doc.Images[*texInfo.Source]

	data, err := readImageBytes(doc, img)
	if err != nil {
		return nil, err
	}

	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := decoded.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := surface.NewMemorySurface[T](w, h)
	for y := 0; y < h; y++ {
		row := out.Row(y)
		for x := 0; x < w; x++ {
			r, g, b, a := decoded.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			row[x] = convert(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
		}
	}
	return out, nil
}

func readImageBytes(doc *gltf.Document, img *gltf.Image) ([]byte, error) {
	if img.BufferView == nil {
		return nil, fmt.Errorf("image has no buffer view (external image URIs are not supported)")
	}
	bv := doc.BufferViews[*img.BufferView]
	buffer := doc.Buffers[bv.Buffer]
	if buffer.URI != "" {
		return nil, fmt.Errorf("external buffers are not supported")
	}
	return buffer.Data[bv.ByteOffset : bv.ByteOffset+bv.ByteLength], nil
}

func readVec3Accessor(doc *gltf.Document, accessorIdx uint32) ([]math3d.Vector3, error) {
	floats, err := readFloatAccessor(doc, accessorIdx, gltf.AccessorVec3, 3)
	if err != nil {
		return nil, err
	}
	result := make([]math3d.Vector3, len(floats))
	for i, f := range floats {
		result[i] = math3d.V3(f[0], f[1], f[2])
	}
	return result, nil
}

func readVec2Accessor(doc *gltf.Document, accessorIdx uint32) ([]math3d.Vector2, error) {
	floats, err := readFloatAccessor(doc, accessorIdx, gltf.AccessorVec2, 2)
	if err != nil {
		return nil, err
	}
	result := make([]math3d.Vector2, len(floats))
	for i, f := range floats {
		result[i] = math3d.V2(f[0], f[1])
	}
	return result, nil
}

// readFloatAccessor reads width-component float32 tuples from an
// accessor, honoring a non-default bufferView stride.
func readFloatAccessor(doc *gltf.Document, accessorIdx uint32, want gltf.AccessorType, width int) ([][3]float32, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != want {
		return nil, fmt.Errorf("expected %v, got %v", want, accessor.Type)
	}
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}
	bv := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bv.Buffer]
	if buffer.URI != "" {
		return nil, fmt.Errorf("external buffers are not supported")
	}

	stride := int(bv.ByteStride)
	if stride == 0 {
		stride = width * 4
	}
	start := int(bv.ByteOffset + accessor.ByteOffset)

	result := make([][3]float32, accessor.Count)
	for i := 0; i < int(accessor.Count); i++ {
		offset := start + i*stride
		for j := 0; j < width; j++ {
			result[i][j] = readFloat32(buffer.Data[offset+j*4:])
		}
	}
	return result, nil
}

func readIndices(doc *gltf.Document, accessorIdx uint32) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}
	bv := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bv.Buffer]
	if buffer.URI != "" {
		return nil, fmt.Errorf("external buffers are not supported")
	}

	start := int(bv.ByteOffset + accessor.ByteOffset)
	count := int(accessor.Count)
	result := make([]int, count)

	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		for i := 0; i < count; i++ {
			result[i] = int(buffer.Data[start+i])
		}
	case gltf.ComponentUshort:
		stride := int(bv.ByteStride)
		if stride == 0 {
			stride = 2
		}
		for i := 0; i < count; i++ {
			o := start + i*stride
			result[i] = int(buffer.Data[o]) | int(buffer.Data[o+1])<<8
		}
	case gltf.ComponentUint:
		stride := int(bv.ByteStride)
		if stride == 0 {
			stride = 4
		}
		for i := 0; i < count; i++ {
			o := start + i*stride
			result[i] = int(buffer.Data[o]) | int(buffer.Data[o+1])<<8 |
				int(buffer.Data[o+2])<<16 | int(buffer.Data[o+3])<<24
		}
	default:
		return nil, fmt.Errorf("unsupported index component type: %v", accessor.ComponentType)
	}
	return result, nil
}

func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
