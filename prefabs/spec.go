package prefabs

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const DefaultScene = "scene.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SceneSpec describes everything the bootstrap creates.
type SceneSpec struct {
	Name    string      `yaml:"name"`
	Tracked TrackedSpec `yaml:"tracked"`
	Camera  CameraSpec  `yaml:"camera"`
	Label   LabelSpec   `yaml:"label"`
	Light   LightSpec   `yaml:"light"`
}

type TrackedSpec struct {
	Name     string     `yaml:"name"`
	Position Vec3Spec   `yaml:"position"`
	Mesh     MeshSpec   `yaml:"mesh"`
	Motion   MotionSpec `yaml:"motion"`
}

type MeshSpec struct {
	Size  float64    `yaml:"size" validate:"gt=0"`
	Color *YAMLColor `yaml:"color"`
}

// MotionSpec selects the motion driver. A non-empty Script wins over the
// Lissajous parameters.
type MotionSpec struct {
	Script    string   `yaml:"script,omitempty"`
	Amplitude Vec3Spec `yaml:"amplitude"`
	Frequency Vec3Spec `yaml:"frequency"`
	Phase     Vec3Spec `yaml:"phase"`
}

type CameraSpec struct {
	Name        string        `yaml:"name"`
	Eye         Vec3Spec      `yaml:"eye"`
	Target      Vec3Spec      `yaml:"target"`
	Up          Vec3Spec      `yaml:"up"`
	FovYDegrees float64       `yaml:"fov_y_degrees" validate:"gt=0,lt=180"`
	Near        float64       `yaml:"near" validate:"gt=0"`
	Far         float64       `yaml:"far" validate:"gtfield=Near"`
	Fly         FlyCameraSpec `yaml:"fly"`
}

type FlyCameraSpec struct {
	Enabled     bool    `yaml:"enabled"`
	Speed       float64 `yaml:"speed" validate:"gte=0"`
	Sensitivity float64 `yaml:"sensitivity" validate:"gte=0"`
}

type LabelSpec struct {
	Text     string     `yaml:"text" validate:"required"`
	FontSize float64    `yaml:"font_size" validate:"gt=0"`
	Color    *YAMLColor `yaml:"color"`
}

type LightSpec struct {
	Position  Vec3Spec   `yaml:"position"`
	Color     *YAMLColor `yaml:"color"`
	Intensity float64    `yaml:"intensity" validate:"gte=0"`
	Ambient   float64    `yaml:"ambient" validate:"gte=0,lte=1"`
}

type Vec3Spec [3]float64

func (v Vec3Spec) Vec() mgl64.Vec3 {
	return mgl64.Vec3(v)
}

// FovY returns the vertical field of view in radians.
func (c CameraSpec) FovY() float64 {
	return c.FovYDegrees * math.Pi / 180
}

var validate = validator.New()

// LoadScene reads, defaults and validates a scene spec.
func LoadScene(filename string) (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](filename)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: validate %s: %w", filename, err)
	}
	return &spec, nil
}

func (s *SceneSpec) Validate() error {
	for _, v := range []any{s.Tracked.Mesh, s.Camera, s.Label, s.Light} {
		if err := validate.Struct(v); err != nil {
			return err
		}
	}
	return nil
}

func (s *SceneSpec) applyDefaults() {
	if s.Tracked.Mesh.Size == 0 {
		s.Tracked.Mesh.Size = 1
	}
	if s.Tracked.Motion.Amplitude == (Vec3Spec{}) && s.Tracked.Motion.Frequency == (Vec3Spec{}) {
		s.Tracked.Motion.Amplitude = Vec3Spec{3, 1, 5}
		s.Tracked.Motion.Frequency = Vec3Spec{3.7, 12, 2.2}
		s.Tracked.Motion.Phase = Vec3Spec{0, math.Pi / 2, 0}
	}
	if s.Camera.Up == (Vec3Spec{}) {
		s.Camera.Up = Vec3Spec{0, 1, 0}
	}
	if s.Camera.FovYDegrees == 0 {
		s.Camera.FovYDegrees = 60
	}
	if s.Camera.Near == 0 {
		s.Camera.Near = 0.1
	}
	if s.Camera.Far == 0 {
		s.Camera.Far = 1000
	}
	if s.Label.FontSize == 0 {
		s.Label.FontSize = 50
	}
}

// EncodeCamera renders a camera spec as a yaml document rooted at "camera",
// ready to paste into a scene file.
func EncodeCamera(c CameraSpec) ([]byte, error) {
	out, err := yaml.Marshal(struct {
		Camera CameraSpec `yaml:"camera"`
	}{c})
	if err != nil {
		return nil, fmt.Errorf("prefabs: encode camera: %w", err)
	}
	return out, nil
}

type YAMLColor struct {
	Value color.RGBA
}

// Or returns the color, or fallback when c is nil.
func (c *YAMLColor) Or(fallback color.RGBA) color.RGBA {
	if c == nil {
		return fallback
	}
	return c.Value
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	var ch [4]uint8
	ch[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return fmt.Errorf("invalid color format: %s", value.Value)
		}
		ch[i] = uint8(v)
	}

	c.Value = color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.Value.R, c.Value.G, c.Value.B, c.Value.A), nil
}
