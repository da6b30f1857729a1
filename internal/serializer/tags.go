package serializer

import (
	"fmt"

	"github.com/zeusync/scenedoc/internal/engine"
)

// generatorTags maps every kind to the generator tag recorded in documents.
// Tags are part of the document format and must never change.
var generatorTags = [...]string{
	engine.KindUnknown: "",

	engine.KindObject3D:     "Object3DSerializer",
	engine.KindGroup:        "GroupSerializer",
	engine.KindScene:        "SceneSerializer",
	engine.KindMesh:         "MeshSerializer",
	engine.KindSprite:       "SpriteSerializer",
	engine.KindPoints:       "PointsSerializer",
	engine.KindLine:         "LineSerializer",
	engine.KindLineSegments: "LineSegmentsSerializer",
	engine.KindLineLoop:     "LineLoopSerializer",

	engine.KindCamera:             "CameraSerializer",
	engine.KindOrthographicCamera: "OrthographicCameraSerializer",
	engine.KindPerspectiveCamera:  "PerspectiveCameraSerializer",

	engine.KindAmbientLight:     "AmbientLightSerializer",
	engine.KindDirectionalLight: "DirectionalLightSerializer",
	engine.KindPointLight:       "PointLightSerializer",
	engine.KindSpotLight:        "SpotLightSerializer",
	engine.KindHemisphereLight:  "HemisphereLightSerializer",
	engine.KindRectAreaLight:    "RectAreaLightSerializer",

	engine.KindLightShadow:            "LightShadowSerializer",
	engine.KindDirectionalLightShadow: "DirectionalLightShadowSerializer",
	engine.KindSpotLightShadow:        "SpotLightShadowSerializer",

	engine.KindMeshBasicMaterial:    "MeshBasicMaterialSerializer",
	engine.KindMeshLambertMaterial:  "MeshLambertMaterialSerializer",
	engine.KindMeshPhongMaterial:    "MeshPhongMaterialSerializer",
	engine.KindMeshPhysicalMaterial: "MeshPhysicalMaterialSerializer",
	engine.KindMeshStandardMaterial: "MeshStandardMaterialSerializer",
	engine.KindMeshToonMaterial:     "MeshToonMaterialSerializer",
	engine.KindMeshNormalMaterial:   "MeshNormalMaterialSerializer",
	engine.KindMeshDepthMaterial:    "MeshDepthMaterialSerializer",
	engine.KindShaderMaterial:       "ShaderMaterialSerializer",
	engine.KindRawShaderMaterial:    "RawShaderMaterialSerializer",
	engine.KindShadowMaterial:       "ShadowMaterialSerializer",
	engine.KindSpriteMaterial:       "SpriteMaterialSerializer",
	engine.KindLineBasicMaterial:    "LineBasicMaterialSerializer",
	engine.KindLineDashedMaterial:   "LineDashedMaterialSerializer",
	engine.KindPointsMaterial:       "PointsMaterialSerializer",
	engine.KindMultiMaterial:        "MultiMaterialSerializer",

	engine.KindBufferGeometry:          "BufferGeometrySerializer",
	engine.KindInstancedBufferGeometry: "InstancedBufferGeometrySerializer",
	engine.KindBoxGeometry:             "BoxGeometrySerializer",
	engine.KindSphereGeometry:          "SphereGeometrySerializer",
	engine.KindCylinderGeometry:        "CylinderGeometrySerializer",
	engine.KindConeGeometry:            "ConeGeometrySerializer",
	engine.KindTorusGeometry:           "TorusGeometrySerializer",
	engine.KindTorusKnotGeometry:       "TorusKnotGeometrySerializer",
	engine.KindPlaneGeometry:           "PlaneGeometrySerializer",
	engine.KindCircleGeometry:          "CircleGeometrySerializer",
	engine.KindRingGeometry:            "RingGeometrySerializer",
	engine.KindLatheGeometry:           "LatheGeometrySerializer",
	engine.KindExtrudeGeometry:         "ExtrudeGeometrySerializer",
	engine.KindShapeGeometry:           "ShapeGeometrySerializer",
	engine.KindPolyhedronGeometry:      "PolyhedronGeometrySerializer",
	engine.KindIcosahedronGeometry:     "IcosahedronGeometrySerializer",
	engine.KindOctahedronGeometry:      "OctahedronGeometrySerializer",
	engine.KindTetrahedronGeometry:     "TetrahedronGeometrySerializer",
	engine.KindDodecahedronGeometry:    "DodecahedronGeometrySerializer",
	engine.KindParametricGeometry:      "ParametricGeometrySerializer",
	engine.KindTextGeometry:            "TextGeometrySerializer",
	engine.KindTubeGeometry:            "TubeGeometrySerializer",

	engine.KindTexture:           "TextureSerializer",
	engine.KindCanvasTexture:     "CanvasTextureSerializer",
	engine.KindCompressedTexture: "CompressedTextureSerializer",
	engine.KindCubeTexture:       "CubeTextureSerializer",
	engine.KindDataTexture:       "DataTextureSerializer",
	engine.KindDepthTexture:      "DepthTextureSerializer",
	engine.KindVideoTexture:      "VideoTextureSerializer",

	engine.KindAudio:                "AudioSerializer",
	engine.KindSky:                  "SkySerializer",
	engine.KindFire:                 "FireSerializer",
	engine.KindSmoke:                "SmokeSerializer",
	engine.KindParticleEmitter:      "ParticleEmitterSerializer",
	engine.KindPointMarker:          "PointMarkerSerializer",
	engine.KindUnscaledText:         "UnscaledTextSerializer",
	engine.KindText3D:               "Text3DSerializer",
	engine.KindCatmullRomCurve:      "CatmullRomCurveSerializer",
	engine.KindQuadraticBezierCurve: "QuadraticBezierCurveSerializer",
	engine.KindCubicBezierCurve:     "CubicBezierCurveSerializer",
	engine.KindLineCurve:            "LineCurveSerializer",
	engine.KindServerModel:          "ServerModelSerializer",
	engine.KindWater:                "WaterSerializer",
	engine.KindCloth:                "ClothSerializer",
	engine.KindPerlinTerrain:        "PerlinTerrainSerializer",

	engine.KindRenderer: "WebGLRendererSerializer",
	engine.KindScript:   "ScriptSerializer",
	engine.KindOptions:  "OptionsSerializer",
}

// The table must have exactly one slot per kind.
var _ = [1]struct{}{}[len(generatorTags)-engine.KindCount]

var tagKinds = func() map[string]engine.Kind {
	m := make(map[string]engine.Kind, len(generatorTags))
	for _, k := range engine.Kinds() {
		tag := generatorTags[k]
		if tag == "" {
			panic(fmt.Sprintf("serializer: no generator tag for kind %s", k))
		}
		if prev, dup := m[tag]; dup {
			panic(fmt.Sprintf("serializer: generator tag %q used by %s and %s", tag, prev, k))
		}
		m[tag] = k
	}
	return m
}()

// Tag returns the generator tag of k, or "" for an invalid kind.
func Tag(k engine.Kind) string {
	if !k.Valid() {
		return ""
	}
	return generatorTags[k]
}

// KindForTag is the inverse of Tag.
func KindForTag(tag string) (engine.Kind, bool) {
	k, ok := tagKinds[tag]
	return k, ok
}
