package asset

import (
	"testing"

	"github.com/qmuntal/gltf"

	"github.com/carrilhoac/nanogl/pkg/surface"
)

func TestPrimitiveTextureFallsBackToWhite(t *testing.T) {
	materialIdx := uint32(0)

	tests := []struct {
		name string
		doc  *gltf.Document
		prim *gltf.Primitive
	}{
		{
			name: "no material",
			doc:  &gltf.Document{},
			prim: &gltf.Primitive{},
		},
		{
			name: "material with no PBR metallic roughness",
			doc: &gltf.Document{
				Materials: []*gltf.Material{{}},
			},
			prim: &gltf.Primitive{Material: &materialIdx},
		},
		{
			name: "PBR with no base color texture",
			doc: &gltf.Document{
				Materials: []*gltf.Material{
					{PBRMetallicRoughness: &gltf.PBRMetallicRoughness{}},
				},
			},
			prim: &gltf.Primitive{Material: &materialIdx},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tex, err := primitiveTexture[uint8](tc.doc, tc.prim, surface.EncodeGrey8FromRGBA)
			if err != nil {
				t.Fatalf("primitiveTexture: %v", err)
			}
			if tex.Width() != 1 || tex.Height() != 1 {
				t.Fatalf("got %dx%d, want 1x1", tex.Width(), tex.Height())
			}
			if got := tex.Row(0)[0]; got != 255 {
				t.Errorf("fallback texture pixel = %d, want 255", got)
			}
		})
	}
}
