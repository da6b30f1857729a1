package engine

// Kind identifies one concrete entity type of the scene model.
type Kind uint16

const (
	KindUnknown Kind = iota

	// Scene nodes

	KindObject3D
	KindGroup
	KindScene
	KindMesh
	KindSprite
	KindPoints
	KindLine
	KindLineSegments
	KindLineLoop

	// Cameras

	KindCamera
	KindOrthographicCamera
	KindPerspectiveCamera

	// Lights

	KindAmbientLight
	KindDirectionalLight
	KindPointLight
	KindSpotLight
	KindHemisphereLight
	KindRectAreaLight

	// Light shadows

	KindLightShadow
	KindDirectionalLightShadow
	KindSpotLightShadow

	// Materials

	KindMeshBasicMaterial
	KindMeshLambertMaterial
	KindMeshPhongMaterial
	KindMeshPhysicalMaterial
	KindMeshStandardMaterial
	KindMeshToonMaterial
	KindMeshNormalMaterial
	KindMeshDepthMaterial
	KindShaderMaterial
	KindRawShaderMaterial
	KindShadowMaterial
	KindSpriteMaterial
	KindLineBasicMaterial
	KindLineDashedMaterial
	KindPointsMaterial
	KindMultiMaterial

	// Geometries

	KindBufferGeometry
	KindInstancedBufferGeometry
	KindBoxGeometry
	KindSphereGeometry
	KindCylinderGeometry
	KindConeGeometry
	KindTorusGeometry
	KindTorusKnotGeometry
	KindPlaneGeometry
	KindCircleGeometry
	KindRingGeometry
	KindLatheGeometry
	KindExtrudeGeometry
	KindShapeGeometry
	KindPolyhedronGeometry
	KindIcosahedronGeometry
	KindOctahedronGeometry
	KindTetrahedronGeometry
	KindDodecahedronGeometry
	KindParametricGeometry
	KindTextGeometry
	KindTubeGeometry

	// Textures

	KindTexture
	KindCanvasTexture
	KindCompressedTexture
	KindCubeTexture
	KindDataTexture
	KindDepthTexture
	KindVideoTexture

	// Domain composites

	KindAudio
	KindSky
	KindFire
	KindSmoke
	KindParticleEmitter
	KindPointMarker
	KindUnscaledText
	KindText3D
	KindCatmullRomCurve
	KindQuadraticBezierCurve
	KindCubicBezierCurve
	KindLineCurve
	KindServerModel
	KindWater
	KindCloth
	KindPerlinTerrain

	// Editor sections

	KindRenderer
	KindScript
	KindOptions

	kindCount
)

// KindCount is the number of kinds including KindUnknown.
const KindCount = int(kindCount)

// Family groups kinds that share a base field set.
type Family uint8

const (
	FamilyUnknown Family = iota
	FamilyObject
	FamilyCamera
	FamilyLight
	FamilyLightShadow
	FamilyMaterial
	FamilyGeometry
	FamilyTexture
	FamilyDomain
	FamilyEditor
)

func (f Family) String() string {
	switch f {
	case FamilyObject:
		return "Object"
	case FamilyCamera:
		return "Camera"
	case FamilyLight:
		return "Light"
	case FamilyLightShadow:
		return "LightShadow"
	case FamilyMaterial:
		return "Material"
	case FamilyGeometry:
		return "Geometry"
	case FamilyTexture:
		return "Texture"
	case FamilyDomain:
		return "Domain"
	case FamilyEditor:
		return "Editor"
	default:
		return "Unknown"
	}
}

// Family returns the family k belongs to.
func (k Kind) Family() Family {
	switch {
	case k >= KindObject3D && k <= KindLineLoop:
		return FamilyObject
	case k >= KindCamera && k <= KindPerspectiveCamera:
		return FamilyCamera
	case k >= KindAmbientLight && k <= KindRectAreaLight:
		return FamilyLight
	case k >= KindLightShadow && k <= KindSpotLightShadow:
		return FamilyLightShadow
	case k >= KindMeshBasicMaterial && k <= KindMultiMaterial:
		return FamilyMaterial
	case k >= KindBufferGeometry && k <= KindTubeGeometry:
		return FamilyGeometry
	case k >= KindTexture && k <= KindVideoTexture:
		return FamilyTexture
	case k >= KindAudio && k <= KindPerlinTerrain:
		return FamilyDomain
	case k >= KindRenderer && k <= KindOptions:
		return FamilyEditor
	default:
		return FamilyUnknown
	}
}

// Valid reports whether k names a concrete kind.
func (k Kind) Valid() bool {
	return k > KindUnknown && k < kindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return "Unknown"
	}
	return kindNames[k]
}

var kindNames = [kindCount]string{
	KindUnknown:                 "Unknown",
	KindObject3D:                "Object3D",
	KindGroup:                   "Group",
	KindScene:                   "Scene",
	KindMesh:                    "Mesh",
	KindSprite:                  "Sprite",
	KindPoints:                  "Points",
	KindLine:                    "Line",
	KindLineSegments:            "LineSegments",
	KindLineLoop:                "LineLoop",
	KindCamera:                  "Camera",
	KindOrthographicCamera:      "OrthographicCamera",
	KindPerspectiveCamera:       "PerspectiveCamera",
	KindAmbientLight:            "AmbientLight",
	KindDirectionalLight:        "DirectionalLight",
	KindPointLight:              "PointLight",
	KindSpotLight:               "SpotLight",
	KindHemisphereLight:         "HemisphereLight",
	KindRectAreaLight:           "RectAreaLight",
	KindLightShadow:             "LightShadow",
	KindDirectionalLightShadow:  "DirectionalLightShadow",
	KindSpotLightShadow:         "SpotLightShadow",
	KindMeshBasicMaterial:       "MeshBasicMaterial",
	KindMeshLambertMaterial:     "MeshLambertMaterial",
	KindMeshPhongMaterial:       "MeshPhongMaterial",
	KindMeshPhysicalMaterial:    "MeshPhysicalMaterial",
	KindMeshStandardMaterial:    "MeshStandardMaterial",
	KindMeshToonMaterial:        "MeshToonMaterial",
	KindMeshNormalMaterial:      "MeshNormalMaterial",
	KindMeshDepthMaterial:       "MeshDepthMaterial",
	KindShaderMaterial:          "ShaderMaterial",
	KindRawShaderMaterial:       "RawShaderMaterial",
	KindShadowMaterial:          "ShadowMaterial",
	KindSpriteMaterial:          "SpriteMaterial",
	KindLineBasicMaterial:       "LineBasicMaterial",
	KindLineDashedMaterial:      "LineDashedMaterial",
	KindPointsMaterial:          "PointsMaterial",
	KindMultiMaterial:           "MultiMaterial",
	KindBufferGeometry:          "BufferGeometry",
	KindInstancedBufferGeometry: "InstancedBufferGeometry",
	KindBoxGeometry:             "BoxGeometry",
	KindSphereGeometry:          "SphereGeometry",
	KindCylinderGeometry:        "CylinderGeometry",
	KindConeGeometry:            "ConeGeometry",
	KindTorusGeometry:           "TorusGeometry",
	KindTorusKnotGeometry:       "TorusKnotGeometry",
	KindPlaneGeometry:           "PlaneGeometry",
	KindCircleGeometry:          "CircleGeometry",
	KindRingGeometry:            "RingGeometry",
	KindLatheGeometry:           "LatheGeometry",
	KindExtrudeGeometry:         "ExtrudeGeometry",
	KindShapeGeometry:           "ShapeGeometry",
	KindPolyhedronGeometry:      "PolyhedronGeometry",
	KindIcosahedronGeometry:     "IcosahedronGeometry",
	KindOctahedronGeometry:      "OctahedronGeometry",
	KindTetrahedronGeometry:     "TetrahedronGeometry",
	KindDodecahedronGeometry:    "DodecahedronGeometry",
	KindParametricGeometry:      "ParametricGeometry",
	KindTextGeometry:            "TextGeometry",
	KindTubeGeometry:            "TubeGeometry",
	KindTexture:                 "Texture",
	KindCanvasTexture:           "CanvasTexture",
	KindCompressedTexture:       "CompressedTexture",
	KindCubeTexture:             "CubeTexture",
	KindDataTexture:             "DataTexture",
	KindDepthTexture:            "DepthTexture",
	KindVideoTexture:            "VideoTexture",
	KindAudio:                   "Audio",
	KindSky:                     "Sky",
	KindFire:                    "Fire",
	KindSmoke:                   "Smoke",
	KindParticleEmitter:         "ParticleEmitter",
	KindPointMarker:             "PointMarker",
	KindUnscaledText:            "UnscaledText",
	KindText3D:                  "Text3D",
	KindCatmullRomCurve:         "CatmullRomCurve",
	KindQuadraticBezierCurve:    "QuadraticBezierCurve",
	KindCubicBezierCurve:        "CubicBezierCurve",
	KindLineCurve:               "LineCurve",
	KindServerModel:             "ServerModel",
	KindWater:                   "Water",
	KindCloth:                   "Cloth",
	KindPerlinTerrain:           "PerlinTerrain",
	KindRenderer:                "WebGLRenderer",
	KindScript:                  "Script",
	KindOptions:                 "Options",
}

// Kinds returns every concrete kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindUnknown + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Entity is implemented by every live value the serializer can convert.
type Entity interface {
	Kind() Kind
}
