package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/synthwave/pkg/embedded"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EmbeddedPresetsPath 内置预设文件在嵌入资源中的路径
const EmbeddedPresetsPath = "data/presets.yaml"

// 支持的预设文件格式
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// FormatFromPath 根据文件扩展名推断预设文件格式
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported preset file extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// ParsePresets 解析预设数据
// 参数：
//
//	data   - 文件内容
//	format - FormatYAML 或 FormatTOML
//
// 返回：
//
//	*PresetSet - 已填充默认值并通过验证的预设集合
//	error      - 解析或验证失败时返回错误
func ParsePresets(data []byte, format string) (*PresetSet, error) {
	var set PresetSet

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &set); err != nil {
			return nil, fmt.Errorf("failed to parse presets YAML: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&set); err != nil {
			return nil, fmt.Errorf("failed to parse presets TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported preset format %q", format)
	}

	for name, p := range set.Presets {
		if p == nil {
			return nil, fmt.Errorf("%w %q: empty preset", ErrInvalidPreset, name)
		}
		p.Name = name
		applyPresetDefaults(p)
	}

	// 只有一个预设时允许省略 default
	if set.Default == "" && len(set.Presets) == 1 {
		for name := range set.Presets {
			set.Default = name
		}
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

// LoadPresetFile 从磁盘加载预设文件（格式由扩展名决定）
func LoadPresetFile(path string) (*PresetSet, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file %s: %w", path, err)
	}

	set, err := ParsePresets(data, format)
	if err != nil {
		return nil, fmt.Errorf("invalid preset file %s: %w", path, err)
	}
	return set, nil
}

// LoadEmbeddedPresets 加载嵌入资源中的内置预设
func LoadEmbeddedPresets() (*PresetSet, error) {
	data, err := embedded.ReadFile(EmbeddedPresetsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded presets: %w", err)
	}
	return ParsePresets(data, FormatYAML)
}
