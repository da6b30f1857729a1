package serializer

import (
	"github.com/zeusync/scenedoc/internal/engine"
	"github.com/zeusync/scenedoc/internal/observability/log"
)

// Registries holds one registry per entity family. Converters reach nested
// entities through it, so a converter for a mesh saves its material through
// Materials and its geometry through Geometries.
type Registries struct {
	Nodes      *Registry[engine.Node]
	Cameras    *Registry[engine.Camera]
	Shadows    *Registry[engine.LightShadow]
	Materials  *Registry[engine.Material]
	Geometries *Registry[engine.Geometry]
	Textures   *Registry[engine.Texture]
	Renderers  *Registry[*engine.Renderer]
	Scripts    *Registry[*engine.Script]
	Options    *Registry[engine.Options]
}

// NewRegistries returns registries with a converter for every kind.
func NewRegistries(logger log.Log) *Registries {
	if logger == nil {
		logger = log.NewNop()
	}
	r := &Registries{
		Nodes:      NewRegistry[engine.Node]("Object3D", logger),
		Cameras:    NewRegistry[engine.Camera]("Camera", logger),
		Shadows:    NewRegistry[engine.LightShadow]("LightShadow", logger),
		Materials:  NewRegistry[engine.Material]("Material", logger),
		Geometries: NewRegistry[engine.Geometry]("Geometry", logger),
		Textures:   NewRegistry[engine.Texture]("Texture", logger),
		Renderers:  NewRegistry[*engine.Renderer]("WebGLRenderer", logger),
		Scripts:    NewRegistry[*engine.Script]("Script", logger),
		Options:    NewRegistry[engine.Options]("Options", logger),
	}
	r.registerObjects()
	r.registerCameras()
	r.registerLights()
	r.registerMaterials()
	r.registerGeometries()
	r.registerTextures()
	r.registerDomain()
	r.registerEditor()
	return r
}

// add registers c with a registry of its family interface F.
func add[F, C engine.Entity](reg *Registry[F], c Converter[C]) {
	reg.Register(lift[F](c))
}

func (r *Registries) registerObjects() {
	add(r.Nodes, newCodec(r, engine.KindObject3D, writeObject3D, readObject3D))
	add(r.Nodes, newCodec(r, engine.KindGroup, writeGroup, readGroup))
	add(r.Nodes, newCodec(r, engine.KindScene, r.writeScene, readScene))
	add(r.Nodes, newCodec(r, engine.KindMesh, r.writeMesh, readMesh))
	add(r.Nodes, newCodec(r, engine.KindSprite, r.writeSprite, readSprite))
	add(r.Nodes, newCodec(r, engine.KindPoints, r.writePoints, readPoints))
	add(r.Nodes, newCodec(r, engine.KindLine, r.writeLine, readLine))
	add(r.Nodes, newCodec(r, engine.KindLineSegments, r.writeLineSegments, readLineSegments))
	add(r.Nodes, newCodec(r, engine.KindLineLoop, r.writeLineLoop, readLineLoop))
}

// registerCameras makes cameras loadable both as scene nodes and as the
// document's viewport camera.
func (r *Registries) registerCameras() {
	base := newCodec(r, engine.KindCamera, writeCamera, readCamera)
	perspective := newCodec(r, engine.KindPerspectiveCamera, writePerspective, readPerspective)
	orthographic := newCodec(r, engine.KindOrthographicCamera, writeOrthographic, readOrthographic)

	add(r.Cameras, base)
	add(r.Cameras, perspective)
	add(r.Cameras, orthographic)
	add(r.Nodes, base)
	add(r.Nodes, perspective)
	add(r.Nodes, orthographic)
}

func (r *Registries) registerLights() {
	add(r.Nodes, newCodec(r, engine.KindAmbientLight, writeAmbient, readAmbient))
	add(r.Nodes, newCodec(r, engine.KindDirectionalLight, r.writeDirectional, readDirectional))
	add(r.Nodes, newCodec(r, engine.KindPointLight, r.writePointLight, readPointLight))
	add(r.Nodes, newCodec(r, engine.KindSpotLight, r.writeSpot, readSpot))
	add(r.Nodes, newCodec(r, engine.KindHemisphereLight, writeHemisphere, readHemisphere))
	add(r.Nodes, newCodec(r, engine.KindRectAreaLight, writeRectArea, readRectArea))

	add(r.Shadows, newCodec(r, engine.KindLightShadow, r.writeShadow, readShadow))
	add(r.Shadows, newCodec(r, engine.KindDirectionalLightShadow, r.writeDirectionalShadow, readDirectionalShadow))
	add(r.Shadows, newCodec(r, engine.KindSpotLightShadow, r.writeSpotShadow, readSpotShadow))
}

func (r *Registries) registerMaterials() {
	add(r.Materials, newCodec(r, engine.KindMeshBasicMaterial, r.writeBasic, readBasic))
	add(r.Materials, newCodec(r, engine.KindMeshLambertMaterial, r.writeLambert, readLambert))
	add(r.Materials, newCodec(r, engine.KindMeshPhongMaterial, r.writePhong, readPhong))
	add(r.Materials, newCodec(r, engine.KindMeshStandardMaterial, r.writeStandard, readStandard))
	add(r.Materials, newCodec(r, engine.KindMeshPhysicalMaterial, r.writePhysical, readPhysical))
	add(r.Materials, newCodec(r, engine.KindMeshToonMaterial, r.writeToon, readToon))
	add(r.Materials, newCodec(r, engine.KindMeshNormalMaterial, writeNormal, readNormal))
	add(r.Materials, newCodec(r, engine.KindMeshDepthMaterial, writeDepth, readDepth))
	add(r.Materials, newCodec(r, engine.KindShaderMaterial, writeShader, readShader))
	add(r.Materials, newCodec(r, engine.KindRawShaderMaterial, writeRawShader, readRawShader))
	add(r.Materials, newCodec(r, engine.KindShadowMaterial, writeShadowMaterial, readShadowMaterial))
	add(r.Materials, newCodec(r, engine.KindSpriteMaterial, r.writeSpriteMaterial, readSpriteMaterial))
	add(r.Materials, newCodec(r, engine.KindLineBasicMaterial, writeLineBasic, readLineBasic))
	add(r.Materials, newCodec(r, engine.KindLineDashedMaterial, writeLineDashed, readLineDashed))
	add(r.Materials, newCodec(r, engine.KindPointsMaterial, r.writePointsMaterial, readPointsMaterial))
	add(r.Materials, newCodec(r, engine.KindMultiMaterial, r.writeMulti, readMulti))
}

func (r *Registries) registerGeometries() {
	g := r.Geometries
	add(g, newCodec(r, engine.KindBufferGeometry, writeBuffer, readBuffer))
	add(g, newCodec(r, engine.KindInstancedBufferGeometry, writeInstanced, readInstanced))

	add(g, paramCodec(r, engine.KindBoxGeometry, engine.NewBoxGeometry,
		func(g *engine.BoxGeometry) *engine.BoxParams { return &g.Params }))
	add(g, paramCodec(r, engine.KindSphereGeometry, engine.NewSphereGeometry,
		func(g *engine.SphereGeometry) *engine.SphereParams { return &g.Params }))
	add(g, paramCodec(r, engine.KindCylinderGeometry, engine.NewCylinderGeometry,
		func(g *engine.CylinderGeometry) *engine.CylinderParams { return &g.Params }))
	add(g, paramCodec(r, engine.KindConeGeometry, engine.NewConeGeometry,
		func(g *engine.ConeGeometry) *engine.ConeParams { return &g.Params }))
	add(g, paramCodec(r, engine.KindTorusGeometry, engine.NewTorusGeometry,
		func(g *engine.TorusGeometry) *engine.TorusParams { return &g.Params }))
	add(g, paramCodec(r, engine.KindTorusKnotGeometry, engine.NewTorusKnotGeometry,
		func(g *engine.TorusKnotGeometry) *engine.TorusKnotParams { return &g.Params }))
	add(g, paramCodec(r, engine.KindPlaneGeometry, engine.NewPlaneGeometry,
		func(g *engine.PlaneGeometry) *engine.PlaneParams { return &g.Params }))
	add(g, paramCodec(r, engine.KindCircleGeometry, engine.NewCircleGeometry,
		func(g *engine.CircleGeometry) *engine.CircleParams { return &g.Params }))
	add(g, paramCodec(r, engine.KindRingGeometry, engine.NewRingGeometry,
		func(g *engine.RingGeometry) *engine.RingParams { return &g.Params }))
	add(g, paramCodec(r, engine.KindLatheGeometry, engine.NewLatheGeometry,
		func(g *engine.LatheGeometry) *engine.LatheParams { return &g.Params }))
	add(g, paramCodec(r, engine.KindExtrudeGeometry, engine.NewExtrudeGeometry,
		func(g *engine.ExtrudeGeometry) *engine.ExtrudeParams { return &g.Params }))
	add(g, paramCodec(r, engine.KindShapeGeometry, engine.NewShapeGeometry,
		func(g *engine.ShapeGeometry) *engine.ShapeParams { return &g.Params }))
	add(g, paramCodec(r, engine.KindPolyhedronGeometry, engine.NewPolyhedronGeometry,
		func(g *engine.PolyhedronGeometry) *engine.PolyhedronParams { return &g.Params }))
	add(g, paramCodec(r, engine.KindParametricGeometry, engine.NewParametricGeometry,
		func(g *engine.ParametricGeometry) *engine.ParametricParams { return &g.Params }))
	add(g, paramCodec(r, engine.KindTubeGeometry, engine.NewTubeGeometry,
		func(g *engine.TubeGeometry) *engine.TubeParams { return &g.Params }))

	for _, k := range []engine.Kind{
		engine.KindIcosahedronGeometry,
		engine.KindOctahedronGeometry,
		engine.KindTetrahedronGeometry,
		engine.KindDodecahedronGeometry,
	} {
		add(g, solidCodec(r, k))
	}

	add(g, newCodec(r, engine.KindTextGeometry, writeTextGeometry, readTextGeometry))
}

func (r *Registries) registerTextures() {
	add(r.Textures, newCodec(r, engine.KindTexture, writeTexture, readTexture))
	add(r.Textures, newCodec(r, engine.KindCanvasTexture, writeCanvasTexture, readCanvasTexture))
	add(r.Textures, newCodec(r, engine.KindCompressedTexture, writeCompressed, readCompressed))
	add(r.Textures, newCodec(r, engine.KindCubeTexture, writeCube, readCube))
	add(r.Textures, newCodec(r, engine.KindDataTexture, writeDataTexture, readDataTexture))
	add(r.Textures, newCodec(r, engine.KindDepthTexture, writeDepthTexture, readDepthTexture))
	add(r.Textures, newCodec(r, engine.KindVideoTexture, writeVideo, readVideo))
}

func (r *Registries) registerDomain() {
	add(r.Nodes, newCodec(r, engine.KindAudio, writeAudio, readAudio))
	add(r.Nodes, newCodec(r, engine.KindSky, writeSky, readSky))
	add(r.Nodes, newCodec(r, engine.KindFire, writeFire, readFire))
	add(r.Nodes, newCodec(r, engine.KindSmoke, writeSmoke, readSmoke))
	add(r.Nodes, newCodec(r, engine.KindParticleEmitter, writeParticle, readParticle))
	add(r.Nodes, newCodec(r, engine.KindPointMarker, writePointMarker, readPointMarker))
	add(r.Nodes, newCodec(r, engine.KindUnscaledText, writeUnscaledText, readUnscaledText))
	add(r.Nodes, newCodec(r, engine.KindText3D, writeText3D, readText3D))
	add(r.Nodes, newCodec(r, engine.KindCatmullRomCurve, writeCatmullRom, readCatmullRom))
	add(r.Nodes, newCodec(r, engine.KindQuadraticBezierCurve, writeQuadratic, readQuadratic))
	add(r.Nodes, newCodec(r, engine.KindCubicBezierCurve, writeCubic, readCubic))
	add(r.Nodes, newCodec(r, engine.KindLineCurve, writeLineCurve, readLineCurve))
	add(r.Nodes, newCodec(r, engine.KindServerModel, writeServerModel, readServerModel))

	add[engine.Node](r.Nodes, unimplemented[*engine.Water]{kind: engine.KindWater})
	add[engine.Node](r.Nodes, unimplemented[*engine.Cloth]{kind: engine.KindCloth})
	add[engine.Node](r.Nodes, unimplemented[*engine.PerlinTerrain]{kind: engine.KindPerlinTerrain})
}

func (r *Registries) registerEditor() {
	add(r.Renderers, newCodec(r, engine.KindRenderer, writeRenderer, readRenderer))
	add(r.Scripts, newCodec(r, engine.KindScript, writeScript, readScript))
	add(r.Options, newCodec(r, engine.KindOptions, writeOptions, readOptions))
}
