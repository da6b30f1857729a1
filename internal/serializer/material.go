package serializer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeusync/scenedoc/internal/engine"
)

type planeDoc struct {
	Normal   mgl32.Vec3 `json:"normal"`
	Constant float32    `json:"constant"`
}

type materialFields struct {
	UUID string `json:"uuid"`
	Name string `json:"name,omitempty"`

	Side        engine.Side  `json:"side,omitempty"`
	ShadowSide  *engine.Side `json:"shadowSide,omitempty"`
	Opacity     *float32     `json:"opacity,omitempty"`
	Transparent bool         `json:"transparent,omitempty"`
	AlphaTest   float32      `json:"alphaTest,omitempty"`
	Visible     *bool        `json:"visible,omitempty"`

	Blending           int  `json:"blending"`
	BlendSrc           int  `json:"blendSrc"`
	BlendDst           int  `json:"blendDst"`
	BlendEquation      int  `json:"blendEquation"`
	BlendSrcAlpha      *int `json:"blendSrcAlpha,omitempty"`
	BlendDstAlpha      *int `json:"blendDstAlpha,omitempty"`
	BlendEquationAlpha *int `json:"blendEquationAlpha,omitempty"`
	PremultipliedAlpha bool `json:"premultipliedAlpha,omitempty"`

	DepthFunc  int   `json:"depthFunc"`
	DepthTest  *bool `json:"depthTest,omitempty"`
	DepthWrite *bool `json:"depthWrite,omitempty"`
	ColorWrite *bool `json:"colorWrite,omitempty"`

	StencilWrite     bool `json:"stencilWrite,omitempty"`
	StencilFunc      int  `json:"stencilFunc"`
	StencilRef       int  `json:"stencilRef"`
	StencilFuncMask  int  `json:"stencilFuncMask"`
	StencilFail      int  `json:"stencilFail"`
	StencilZFail     int  `json:"stencilZFail"`
	StencilZPass     int  `json:"stencilZPass"`
	StencilWriteMask int  `json:"stencilWriteMask"`

	ClippingPlanes   []planeDoc `json:"clippingPlanes,omitempty"`
	ClipIntersection bool       `json:"clipIntersection,omitempty"`
	ClipShadows      bool       `json:"clipShadows,omitempty"`

	PolygonOffset       bool    `json:"polygonOffset,omitempty"`
	PolygonOffsetFactor float32 `json:"polygonOffsetFactor,omitempty"`
	PolygonOffsetUnits  float32 `json:"polygonOffsetUnits,omitempty"`

	Dithering    bool   `json:"dithering,omitempty"`
	VertexColors bool   `json:"vertexColors,omitempty"`
	ToneMapped   *bool  `json:"toneMapped,omitempty"`
	Precision    string `json:"precision,omitempty"`

	UserData map[string]any `json:"userData,omitempty"`
}

func writeMaterialFields(m *engine.MaterialBase, d *materialFields) {
	d.UUID = m.UUID
	d.Name = m.Name

	d.Side = m.Side
	d.ShadowSide = m.ShadowSide
	d.Opacity = ptr(m.Opacity)
	d.Transparent = m.Transparent
	d.AlphaTest = m.AlphaTest
	d.Visible = ptr(m.Visible)

	d.Blending = m.Blending
	d.BlendSrc = m.BlendSrc
	d.BlendDst = m.BlendDst
	d.BlendEquation = m.BlendEquation
	d.BlendSrcAlpha = m.BlendSrcAlpha
	d.BlendDstAlpha = m.BlendDstAlpha
	d.BlendEquationAlpha = m.BlendEquationAlpha
	d.PremultipliedAlpha = m.PremultipliedAlpha

	d.DepthFunc = m.DepthFunc
	d.DepthTest = ptr(m.DepthTest)
	d.DepthWrite = ptr(m.DepthWrite)
	d.ColorWrite = ptr(m.ColorWrite)

	d.StencilWrite = m.StencilWrite
	d.StencilFunc = m.StencilFunc
	d.StencilRef = m.StencilRef
	d.StencilFuncMask = m.StencilFuncMask
	d.StencilFail = m.StencilFail
	d.StencilZFail = m.StencilZFail
	d.StencilZPass = m.StencilZPass
	d.StencilWriteMask = m.StencilWriteMask

	for _, p := range m.ClippingPlanes {
		d.ClippingPlanes = append(d.ClippingPlanes, planeDoc(p))
	}
	d.ClipIntersection = m.ClipIntersection
	d.ClipShadows = m.ClipShadows

	d.PolygonOffset = m.PolygonOffset
	d.PolygonOffsetFactor = m.PolygonOffsetFactor
	d.PolygonOffsetUnits = m.PolygonOffsetUnits

	d.Dithering = m.Dithering
	d.VertexColors = m.VertexColors
	d.ToneMapped = ptr(m.ToneMapped)
	d.Precision = m.Precision

	d.UserData = m.UserData
}

func applyMaterialFields(d *materialFields, m *engine.MaterialBase) {
	if d.UUID != "" {
		m.UUID = d.UUID
	}
	m.Name = d.Name

	m.Side = d.Side
	m.ShadowSide = d.ShadowSide
	set(&m.Opacity, d.Opacity)
	m.Transparent = d.Transparent
	m.AlphaTest = d.AlphaTest
	set(&m.Visible, d.Visible)

	m.Blending = d.Blending
	m.BlendSrc = d.BlendSrc
	m.BlendDst = d.BlendDst
	m.BlendEquation = d.BlendEquation
	m.BlendSrcAlpha = d.BlendSrcAlpha
	m.BlendDstAlpha = d.BlendDstAlpha
	m.BlendEquationAlpha = d.BlendEquationAlpha
	m.PremultipliedAlpha = d.PremultipliedAlpha

	m.DepthFunc = d.DepthFunc
	set(&m.DepthTest, d.DepthTest)
	set(&m.DepthWrite, d.DepthWrite)
	set(&m.ColorWrite, d.ColorWrite)

	m.StencilWrite = d.StencilWrite
	m.StencilFunc = d.StencilFunc
	m.StencilRef = d.StencilRef
	m.StencilFuncMask = d.StencilFuncMask
	m.StencilFail = d.StencilFail
	m.StencilZFail = d.StencilZFail
	m.StencilZPass = d.StencilZPass
	m.StencilWriteMask = d.StencilWriteMask

	m.ClippingPlanes = nil
	for _, p := range d.ClippingPlanes {
		m.ClippingPlanes = append(m.ClippingPlanes, engine.Plane(p))
	}
	m.ClipIntersection = d.ClipIntersection
	m.ClipShadows = d.ClipShadows

	m.PolygonOffset = d.PolygonOffset
	m.PolygonOffsetFactor = d.PolygonOffsetFactor
	m.PolygonOffsetUnits = d.PolygonOffsetUnits

	m.Dithering = d.Dithering
	m.VertexColors = d.VertexColors
	set(&m.ToneMapped, d.ToneMapped)
	m.Precision = d.Precision

	if d.UserData != nil {
		m.UserData = d.UserData
	}
}

type basicDoc struct {
	envelope
	materialFields

	Color              *uint32  `json:"color,omitempty"`
	Map                Fragment `json:"map,omitempty"`
	AlphaMap           Fragment `json:"alphaMap,omitempty"`
	AOMap              Fragment `json:"aoMap,omitempty"`
	AOMapIntensity     float32  `json:"aoMapIntensity"`
	EnvMap             Fragment `json:"envMap,omitempty"`
	LightMap           Fragment `json:"lightMap,omitempty"`
	LightMapIntensity  float32  `json:"lightMapIntensity"`
	SpecularMap        Fragment `json:"specularMap,omitempty"`
	Combine            int      `json:"combine"`
	Reflectivity       float32  `json:"reflectivity"`
	RefractionRatio    float32  `json:"refractionRatio"`
	Wireframe          bool     `json:"wireframe,omitempty"`
	WireframeLinewidth float32  `json:"wireframeLinewidth"`
	Fog                *bool    `json:"fog,omitempty"`
}

func (r *Registries) writeBasic(m *engine.MeshBasicMaterial, d *basicDoc) error {
	writeMaterialFields(m.AsMaterialBase(), &d.materialFields)
	d.Color = hex(m.Color)
	d.Map = r.Textures.Save(m.Map)
	d.AlphaMap = r.Textures.Save(m.AlphaMap)
	d.AOMap = r.Textures.Save(m.AOMap)
	d.AOMapIntensity = m.AOMapIntensity
	d.EnvMap = r.Textures.Save(m.EnvMap)
	d.LightMap = r.Textures.Save(m.LightMap)
	d.LightMapIntensity = m.LightMapIntensity
	d.SpecularMap = r.Textures.Save(m.SpecularMap)
	d.Combine = m.Combine
	d.Reflectivity = m.Reflectivity
	d.RefractionRatio = m.RefractionRatio
	d.Wireframe = m.Wireframe
	d.WireframeLinewidth = m.WireframeLinewidth
	d.Fog = ptr(m.Fog)
	return nil
}

func readBasic(d *basicDoc, m *engine.MeshBasicMaterial, l *loader) (*engine.MeshBasicMaterial, error) {
	if m == nil {
		m = engine.NewMeshBasicMaterial()
	}
	applyMaterialFields(&d.materialFields, m.AsMaterialBase())
	setColor(&m.Color, d.Color)
	m.AOMapIntensity = d.AOMapIntensity
	m.LightMapIntensity = d.LightMapIntensity
	m.Combine = d.Combine
	m.Reflectivity = d.Reflectivity
	m.RefractionRatio = d.RefractionRatio
	m.Wireframe = d.Wireframe
	m.WireframeLinewidth = d.WireframeLinewidth
	set(&m.Fog, d.Fog)

	l.texture(d.Map, &m.Map)
	l.texture(d.AlphaMap, &m.AlphaMap)
	l.texture(d.AOMap, &m.AOMap)
	l.texture(d.EnvMap, &m.EnvMap)
	l.texture(d.LightMap, &m.LightMap)
	l.texture(d.SpecularMap, &m.SpecularMap)
	return m, nil
}

type lambertDoc struct {
	envelope
	materialFields

	Color             *uint32  `json:"color,omitempty"`
	Emissive          *uint32  `json:"emissive,omitempty"`
	EmissiveIntensity float32  `json:"emissiveIntensity"`
	Map               Fragment `json:"map,omitempty"`
	EmissiveMap       Fragment `json:"emissiveMap,omitempty"`
	AlphaMap          Fragment `json:"alphaMap,omitempty"`
	EnvMap            Fragment `json:"envMap,omitempty"`
	Reflectivity      float32  `json:"reflectivity"`
	Wireframe         bool     `json:"wireframe,omitempty"`
	Fog               *bool    `json:"fog,omitempty"`
}

func (r *Registries) writeLambert(m *engine.MeshLambertMaterial, d *lambertDoc) error {
	writeMaterialFields(m.AsMaterialBase(), &d.materialFields)
	d.Color = hex(m.Color)
	d.Emissive = hex(m.Emissive)
	d.EmissiveIntensity = m.EmissiveIntensity
	d.Map = r.Textures.Save(m.Map)
	d.EmissiveMap = r.Textures.Save(m.EmissiveMap)
	d.AlphaMap = r.Textures.Save(m.AlphaMap)
	d.EnvMap = r.Textures.Save(m.EnvMap)
	d.Reflectivity = m.Reflectivity
	d.Wireframe = m.Wireframe
	d.Fog = ptr(m.Fog)
	return nil
}

func readLambert(d *lambertDoc, m *engine.MeshLambertMaterial, l *loader) (*engine.MeshLambertMaterial, error) {
	if m == nil {
		m = engine.NewMeshLambertMaterial()
	}
	applyMaterialFields(&d.materialFields, m.AsMaterialBase())
	setColor(&m.Color, d.Color)
	setColor(&m.Emissive, d.Emissive)
	m.EmissiveIntensity = d.EmissiveIntensity
	m.Reflectivity = d.Reflectivity
	m.Wireframe = d.Wireframe
	set(&m.Fog, d.Fog)

	l.texture(d.Map, &m.Map)
	l.texture(d.EmissiveMap, &m.EmissiveMap)
	l.texture(d.AlphaMap, &m.AlphaMap)
	l.texture(d.EnvMap, &m.EnvMap)
	return m, nil
}

type phongDoc struct {
	envelope
	materialFields

	Color             *uint32     `json:"color,omitempty"`
	Emissive          *uint32     `json:"emissive,omitempty"`
	EmissiveIntensity float32     `json:"emissiveIntensity"`
	Specular          *uint32     `json:"specular,omitempty"`
	Shininess         float32     `json:"shininess"`
	Map               Fragment    `json:"map,omitempty"`
	NormalMap         Fragment    `json:"normalMap,omitempty"`
	NormalScale       *mgl32.Vec2 `json:"normalScale,omitempty"`
	BumpMap           Fragment    `json:"bumpMap,omitempty"`
	BumpScale         float32     `json:"bumpScale"`
	SpecularMap       Fragment    `json:"specularMap,omitempty"`
	EmissiveMap       Fragment    `json:"emissiveMap,omitempty"`
	FlatShading       bool        `json:"flatShading,omitempty"`
	Wireframe         bool        `json:"wireframe,omitempty"`
	Fog               *bool       `json:"fog,omitempty"`
}

func (r *Registries) writePhong(m *engine.MeshPhongMaterial, d *phongDoc) error {
	writeMaterialFields(m.AsMaterialBase(), &d.materialFields)
	d.Color = hex(m.Color)
	d.Emissive = hex(m.Emissive)
	d.EmissiveIntensity = m.EmissiveIntensity
	d.Specular = hex(m.Specular)
	d.Shininess = m.Shininess
	d.Map = r.Textures.Save(m.Map)
	d.NormalMap = r.Textures.Save(m.NormalMap)
	d.NormalScale = ptr(m.NormalScale)
	d.BumpMap = r.Textures.Save(m.BumpMap)
	d.BumpScale = m.BumpScale
	d.SpecularMap = r.Textures.Save(m.SpecularMap)
	d.EmissiveMap = r.Textures.Save(m.EmissiveMap)
	d.FlatShading = m.FlatShading
	d.Wireframe = m.Wireframe
	d.Fog = ptr(m.Fog)
	return nil
}

func readPhong(d *phongDoc, m *engine.MeshPhongMaterial, l *loader) (*engine.MeshPhongMaterial, error) {
	if m == nil {
		m = engine.NewMeshPhongMaterial()
	}
	applyMaterialFields(&d.materialFields, m.AsMaterialBase())
	setColor(&m.Color, d.Color)
	setColor(&m.Emissive, d.Emissive)
	m.EmissiveIntensity = d.EmissiveIntensity
	setColor(&m.Specular, d.Specular)
	m.Shininess = d.Shininess
	set(&m.NormalScale, d.NormalScale)
	m.BumpScale = d.BumpScale
	m.FlatShading = d.FlatShading
	m.Wireframe = d.Wireframe
	set(&m.Fog, d.Fog)

	l.texture(d.Map, &m.Map)
	l.texture(d.NormalMap, &m.NormalMap)
	l.texture(d.BumpMap, &m.BumpMap)
	l.texture(d.SpecularMap, &m.SpecularMap)
	l.texture(d.EmissiveMap, &m.EmissiveMap)
	return m, nil
}

// standardFields is shared by the standard and physical materials.
type standardFields struct {
	materialFields

	Color             *uint32     `json:"color,omitempty"`
	Emissive          *uint32     `json:"emissive,omitempty"`
	EmissiveIntensity float32     `json:"emissiveIntensity"`
	Roughness         float32     `json:"roughness"`
	Metalness         float32     `json:"metalness"`
	Map               Fragment    `json:"map,omitempty"`
	NormalMap         Fragment    `json:"normalMap,omitempty"`
	NormalScale       *mgl32.Vec2 `json:"normalScale,omitempty"`
	RoughnessMap      Fragment    `json:"roughnessMap,omitempty"`
	MetalnessMap      Fragment    `json:"metalnessMap,omitempty"`
	EmissiveMap       Fragment    `json:"emissiveMap,omitempty"`
	EnvMap            Fragment    `json:"envMap,omitempty"`
	EnvMapIntensity   float32     `json:"envMapIntensity"`
	FlatShading       bool        `json:"flatShading,omitempty"`
	Wireframe         bool        `json:"wireframe,omitempty"`
	Fog               *bool       `json:"fog,omitempty"`
}

func (r *Registries) writeStandardFields(m *engine.MeshStandardMaterial, d *standardFields) {
	writeMaterialFields(m.AsMaterialBase(), &d.materialFields)
	d.Color = hex(m.Color)
	d.Emissive = hex(m.Emissive)
	d.EmissiveIntensity = m.EmissiveIntensity
	d.Roughness = m.Roughness
	d.Metalness = m.Metalness
	d.Map = r.Textures.Save(m.Map)
	d.NormalMap = r.Textures.Save(m.NormalMap)
	d.NormalScale = ptr(m.NormalScale)
	d.RoughnessMap = r.Textures.Save(m.RoughnessMap)
	d.MetalnessMap = r.Textures.Save(m.MetalnessMap)
	d.EmissiveMap = r.Textures.Save(m.EmissiveMap)
	d.EnvMap = r.Textures.Save(m.EnvMap)
	d.EnvMapIntensity = m.EnvMapIntensity
	d.FlatShading = m.FlatShading
	d.Wireframe = m.Wireframe
	d.Fog = ptr(m.Fog)
}

func applyStandardFields(d *standardFields, m *engine.MeshStandardMaterial, l *loader) {
	applyMaterialFields(&d.materialFields, m.AsMaterialBase())
	setColor(&m.Color, d.Color)
	setColor(&m.Emissive, d.Emissive)
	m.EmissiveIntensity = d.EmissiveIntensity
	m.Roughness = d.Roughness
	m.Metalness = d.Metalness
	set(&m.NormalScale, d.NormalScale)
	m.EnvMapIntensity = d.EnvMapIntensity
	m.FlatShading = d.FlatShading
	m.Wireframe = d.Wireframe
	set(&m.Fog, d.Fog)

	l.texture(d.Map, &m.Map)
	l.texture(d.NormalMap, &m.NormalMap)
	l.texture(d.RoughnessMap, &m.RoughnessMap)
	l.texture(d.MetalnessMap, &m.MetalnessMap)
	l.texture(d.EmissiveMap, &m.EmissiveMap)
	l.texture(d.EnvMap, &m.EnvMap)
}

type standardDoc struct {
	envelope
	standardFields
}

func (r *Registries) writeStandard(m *engine.MeshStandardMaterial, d *standardDoc) error {
	r.writeStandardFields(m, &d.standardFields)
	return nil
}

func readStandard(d *standardDoc, m *engine.MeshStandardMaterial, l *loader) (*engine.MeshStandardMaterial, error) {
	if m == nil {
		m = engine.NewMeshStandardMaterial()
	}
	applyStandardFields(&d.standardFields, m, l)
	return m, nil
}

type physicalDoc struct {
	envelope
	standardFields

	Clearcoat          float32 `json:"clearcoat"`
	ClearcoatRoughness float32 `json:"clearcoatRoughness"`
	IOR                float32 `json:"ior"`
	Reflectivity       float32 `json:"reflectivity"`
	Sheen              float32 `json:"sheen"`
	SheenColor         *uint32 `json:"sheenColor,omitempty"`
	Transmission       float32 `json:"transmission"`
	Thickness          float32 `json:"thickness"`
}

func (r *Registries) writePhysical(m *engine.MeshPhysicalMaterial, d *physicalDoc) error {
	r.writeStandardFields(&m.MeshStandardMaterial, &d.standardFields)
	d.Clearcoat = m.Clearcoat
	d.ClearcoatRoughness = m.ClearcoatRoughness
	d.IOR = m.IOR
	d.Reflectivity = m.Reflectivity
	d.Sheen = m.Sheen
	d.SheenColor = hex(m.SheenColor)
	d.Transmission = m.Transmission
	d.Thickness = m.Thickness
	return nil
}

func readPhysical(d *physicalDoc, m *engine.MeshPhysicalMaterial, l *loader) (*engine.MeshPhysicalMaterial, error) {
	if m == nil {
		m = engine.NewMeshPhysicalMaterial()
	}
	applyStandardFields(&d.standardFields, &m.MeshStandardMaterial, l)
	m.Clearcoat = d.Clearcoat
	m.ClearcoatRoughness = d.ClearcoatRoughness
	m.IOR = d.IOR
	m.Reflectivity = d.Reflectivity
	m.Sheen = d.Sheen
	setColor(&m.SheenColor, d.SheenColor)
	m.Transmission = d.Transmission
	m.Thickness = d.Thickness
	return m, nil
}

type toonDoc struct {
	envelope
	materialFields

	Color             *uint32  `json:"color,omitempty"`
	Emissive          *uint32  `json:"emissive,omitempty"`
	EmissiveIntensity float32  `json:"emissiveIntensity"`
	Map               Fragment `json:"map,omitempty"`
	GradientMap       Fragment `json:"gradientMap,omitempty"`
	Wireframe         bool     `json:"wireframe,omitempty"`
	Fog               *bool    `json:"fog,omitempty"`
}

func (r *Registries) writeToon(m *engine.MeshToonMaterial, d *toonDoc) error {
	writeMaterialFields(m.AsMaterialBase(), &d.materialFields)
	d.Color = hex(m.Color)
	d.Emissive = hex(m.Emissive)
	d.EmissiveIntensity = m.EmissiveIntensity
	d.Map = r.Textures.Save(m.Map)
	d.GradientMap = r.Textures.Save(m.GradientMap)
	d.Wireframe = m.Wireframe
	d.Fog = ptr(m.Fog)
	return nil
}

func readToon(d *toonDoc, m *engine.MeshToonMaterial, l *loader) (*engine.MeshToonMaterial, error) {
	if m == nil {
		m = engine.NewMeshToonMaterial()
	}
	applyMaterialFields(&d.materialFields, m.AsMaterialBase())
	setColor(&m.Color, d.Color)
	setColor(&m.Emissive, d.Emissive)
	m.EmissiveIntensity = d.EmissiveIntensity
	m.Wireframe = d.Wireframe
	set(&m.Fog, d.Fog)

	l.texture(d.Map, &m.Map)
	l.texture(d.GradientMap, &m.GradientMap)
	return m, nil
}

type normalDoc struct {
	envelope
	materialFields

	FlatShading bool `json:"flatShading,omitempty"`
	Wireframe   bool `json:"wireframe,omitempty"`
}

func writeNormal(m *engine.MeshNormalMaterial, d *normalDoc) error {
	writeMaterialFields(m.AsMaterialBase(), &d.materialFields)
	d.FlatShading = m.FlatShading
	d.Wireframe = m.Wireframe
	return nil
}

func readNormal(d *normalDoc, m *engine.MeshNormalMaterial, _ *loader) (*engine.MeshNormalMaterial, error) {
	if m == nil {
		m = engine.NewMeshNormalMaterial()
	}
	applyMaterialFields(&d.materialFields, m.AsMaterialBase())
	m.FlatShading = d.FlatShading
	m.Wireframe = d.Wireframe
	return m, nil
}

type depthDoc struct {
	envelope
	materialFields

	DepthPacking int  `json:"depthPacking"`
	Wireframe    bool `json:"wireframe,omitempty"`
}

func writeDepth(m *engine.MeshDepthMaterial, d *depthDoc) error {
	writeMaterialFields(m.AsMaterialBase(), &d.materialFields)
	d.DepthPacking = m.DepthPacking
	d.Wireframe = m.Wireframe
	return nil
}

func readDepth(d *depthDoc, m *engine.MeshDepthMaterial, _ *loader) (*engine.MeshDepthMaterial, error) {
	if m == nil {
		m = engine.NewMeshDepthMaterial()
	}
	applyMaterialFields(&d.materialFields, m.AsMaterialBase())
	m.DepthPacking = d.DepthPacking
	m.Wireframe = d.Wireframe
	return m, nil
}

type uniformDoc struct {
	Type  string `json:"type,omitempty"`
	Value any    `json:"value"`
}

type shaderDoc struct {
	envelope
	materialFields

	Uniforms       map[string]uniformDoc `json:"uniforms,omitempty"`
	Defines        map[string]any        `json:"defines,omitempty"`
	VertexShader   string                `json:"vertexShader"`
	FragmentShader string                `json:"fragmentShader"`
	Lights         bool                  `json:"lights,omitempty"`
	Fog            bool                  `json:"fog,omitempty"`
	Wireframe      bool                  `json:"wireframe,omitempty"`
}

func writeShaderDoc(m *engine.ShaderMaterial, d *shaderDoc) {
	writeMaterialFields(m.AsMaterialBase(), &d.materialFields)
	if len(m.Uniforms) > 0 {
		d.Uniforms = make(map[string]uniformDoc, len(m.Uniforms))
		for name, u := range m.Uniforms {
			d.Uniforms[name] = uniformDoc(u)
		}
	}
	d.Defines = m.Defines
	d.VertexShader = m.VertexShader
	d.FragmentShader = m.FragmentShader
	d.Lights = m.Lights
	d.Fog = m.Fog
	d.Wireframe = m.Wireframe
}

func applyShaderDoc(d *shaderDoc, m *engine.ShaderMaterial) {
	applyMaterialFields(&d.materialFields, m.AsMaterialBase())
	m.Uniforms = make(map[string]engine.Uniform, len(d.Uniforms))
	for name, u := range d.Uniforms {
		m.Uniforms[name] = engine.Uniform(u)
	}
	m.Defines = d.Defines
	m.VertexShader = d.VertexShader
	m.FragmentShader = d.FragmentShader
	m.Lights = d.Lights
	m.Fog = d.Fog
	m.Wireframe = d.Wireframe
}

func writeShader(m *engine.ShaderMaterial, d *shaderDoc) error {
	writeShaderDoc(m, d)
	return nil
}

func readShader(d *shaderDoc, m *engine.ShaderMaterial, _ *loader) (*engine.ShaderMaterial, error) {
	if m == nil {
		m = engine.NewShaderMaterial()
	}
	applyShaderDoc(d, m)
	return m, nil
}

func writeRawShader(m *engine.RawShaderMaterial, d *shaderDoc) error {
	writeShaderDoc(&m.ShaderMaterial, d)
	return nil
}

func readRawShader(d *shaderDoc, m *engine.RawShaderMaterial, _ *loader) (*engine.RawShaderMaterial, error) {
	if m == nil {
		m = engine.NewRawShaderMaterial()
	}
	applyShaderDoc(d, &m.ShaderMaterial)
	return m, nil
}

type shadowMaterialDoc struct {
	envelope
	materialFields

	Color *uint32 `json:"color,omitempty"`
}

func writeShadowMaterial(m *engine.ShadowMaterial, d *shadowMaterialDoc) error {
	writeMaterialFields(m.AsMaterialBase(), &d.materialFields)
	d.Color = hex(m.Color)
	return nil
}

func readShadowMaterial(d *shadowMaterialDoc, m *engine.ShadowMaterial, _ *loader) (*engine.ShadowMaterial, error) {
	if m == nil {
		m = engine.NewShadowMaterial()
	}
	applyMaterialFields(&d.materialFields, m.AsMaterialBase())
	setColor(&m.Color, d.Color)
	return m, nil
}

type spriteMaterialDoc struct {
	envelope
	materialFields

	Color           *uint32  `json:"color,omitempty"`
	Map             Fragment `json:"map,omitempty"`
	AlphaMap        Fragment `json:"alphaMap,omitempty"`
	Rotation        float32  `json:"rotation"`
	SizeAttenuation *bool    `json:"sizeAttenuation,omitempty"`
}

func (r *Registries) writeSpriteMaterial(m *engine.SpriteMaterial, d *spriteMaterialDoc) error {
	writeMaterialFields(m.AsMaterialBase(), &d.materialFields)
	d.Color = hex(m.Color)
	d.Map = r.Textures.Save(m.Map)
	d.AlphaMap = r.Textures.Save(m.AlphaMap)
	d.Rotation = m.Rotation
	d.SizeAttenuation = ptr(m.SizeAttenuation)
	return nil
}

func readSpriteMaterial(d *spriteMaterialDoc, m *engine.SpriteMaterial, l *loader) (*engine.SpriteMaterial, error) {
	if m == nil {
		m = engine.NewSpriteMaterial()
	}
	applyMaterialFields(&d.materialFields, m.AsMaterialBase())
	setColor(&m.Color, d.Color)
	m.Rotation = d.Rotation
	set(&m.SizeAttenuation, d.SizeAttenuation)

	l.texture(d.Map, &m.Map)
	l.texture(d.AlphaMap, &m.AlphaMap)
	return m, nil
}

type lineBasicFields struct {
	materialFields

	Color     *uint32 `json:"color,omitempty"`
	Linewidth float32 `json:"linewidth"`
	Linecap   string  `json:"linecap,omitempty"`
	Linejoin  string  `json:"linejoin,omitempty"`
}

func writeLineBasicFields(m *engine.LineBasicMaterial, d *lineBasicFields) {
	writeMaterialFields(m.AsMaterialBase(), &d.materialFields)
	d.Color = hex(m.Color)
	d.Linewidth = m.Linewidth
	d.Linecap = m.Linecap
	d.Linejoin = m.Linejoin
}

func applyLineBasicFields(d *lineBasicFields, m *engine.LineBasicMaterial) {
	applyMaterialFields(&d.materialFields, m.AsMaterialBase())
	setColor(&m.Color, d.Color)
	m.Linewidth = d.Linewidth
	if d.Linecap != "" {
		m.Linecap = d.Linecap
	}
	if d.Linejoin != "" {
		m.Linejoin = d.Linejoin
	}
}

type lineBasicDoc struct {
	envelope
	lineBasicFields
}

func writeLineBasic(m *engine.LineBasicMaterial, d *lineBasicDoc) error {
	writeLineBasicFields(m, &d.lineBasicFields)
	return nil
}

func readLineBasic(d *lineBasicDoc, m *engine.LineBasicMaterial, _ *loader) (*engine.LineBasicMaterial, error) {
	if m == nil {
		m = engine.NewLineBasicMaterial()
	}
	applyLineBasicFields(&d.lineBasicFields, m)
	return m, nil
}

type lineDashedDoc struct {
	envelope
	lineBasicFields

	Scale    float32 `json:"scale"`
	DashSize float32 `json:"dashSize"`
	GapSize  float32 `json:"gapSize"`
}

func writeLineDashed(m *engine.LineDashedMaterial, d *lineDashedDoc) error {
	writeLineBasicFields(&m.LineBasicMaterial, &d.lineBasicFields)
	d.Scale = m.Scale
	d.DashSize = m.DashSize
	d.GapSize = m.GapSize
	return nil
}

func readLineDashed(d *lineDashedDoc, m *engine.LineDashedMaterial, _ *loader) (*engine.LineDashedMaterial, error) {
	if m == nil {
		m = engine.NewLineDashedMaterial()
	}
	applyLineBasicFields(&d.lineBasicFields, &m.LineBasicMaterial)
	m.Scale = d.Scale
	m.DashSize = d.DashSize
	m.GapSize = d.GapSize
	return m, nil
}

type pointsMaterialDoc struct {
	envelope
	materialFields

	Color           *uint32  `json:"color,omitempty"`
	Map             Fragment `json:"map,omitempty"`
	AlphaMap        Fragment `json:"alphaMap,omitempty"`
	Size            float32  `json:"size"`
	SizeAttenuation *bool    `json:"sizeAttenuation,omitempty"`
}

func (r *Registries) writePointsMaterial(m *engine.PointsMaterial, d *pointsMaterialDoc) error {
	writeMaterialFields(m.AsMaterialBase(), &d.materialFields)
	d.Color = hex(m.Color)
	d.Map = r.Textures.Save(m.Map)
	d.AlphaMap = r.Textures.Save(m.AlphaMap)
	d.Size = m.Size
	d.SizeAttenuation = ptr(m.SizeAttenuation)
	return nil
}

func readPointsMaterial(d *pointsMaterialDoc, m *engine.PointsMaterial, l *loader) (*engine.PointsMaterial, error) {
	if m == nil {
		m = engine.NewPointsMaterial()
	}
	applyMaterialFields(&d.materialFields, m.AsMaterialBase())
	setColor(&m.Color, d.Color)
	m.Size = d.Size
	set(&m.SizeAttenuation, d.SizeAttenuation)

	l.texture(d.Map, &m.Map)
	l.texture(d.AlphaMap, &m.AlphaMap)
	return m, nil
}

type multiDoc struct {
	envelope
	materialFields

	Materials []Fragment `json:"materials"`
}

// writeMulti keeps one slot per material so group material indices stay
// valid; materials that cannot be saved are recorded as null.
func (r *Registries) writeMulti(m *engine.MultiMaterial, d *multiDoc) error {
	writeMaterialFields(m.AsMaterialBase(), &d.materialFields)
	d.Materials = make([]Fragment, len(m.Materials))
	for i, sub := range m.Materials {
		if frag := r.Materials.Save(sub); frag != nil {
			d.Materials[i] = frag
		} else {
			d.Materials[i] = Fragment("null")
		}
	}
	return nil
}

func readMulti(d *multiDoc, m *engine.MultiMaterial, l *loader) (*engine.MultiMaterial, error) {
	if m == nil {
		m = engine.NewMultiMaterial()
	}
	applyMaterialFields(&d.materialFields, m.AsMaterialBase())
	m.Materials = make([]engine.Material, len(d.Materials))
	for i, raw := range d.Materials {
		l.material(raw, &m.Materials[i])
	}
	return m, nil
}
