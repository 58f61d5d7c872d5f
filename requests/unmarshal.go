package requests

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/brettbedarf/netnode"
)

// Format is a world definition encoding
type Format string

const (
	YAMLFormat Format = "yaml"
	JSONFormat Format = "json"
)

// FormatFromPath picks the format by file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAMLFormat, nil
	case ".json":
		return JSONFormat, nil
	default:
		return "", fmt.Errorf("unknown world file extension: %s", path)
	}
}

// LoadWorldFile reads and converts a world definition file.
func LoadWorldFile(path string) (*netnode.World, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return UnmarshalWorld(data, format)
}

// UnmarshalWorld decodes a world definition. Unknown fields are rejected so
// typos in hand-written worlds surface at load time.
func UnmarshalWorld(data []byte, format Format) (*netnode.World, error) {
	var dto WorldDTO
	switch format {
	case YAMLFormat:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", netnode.ErrInvalidWorld, err)
		}
	case JSONFormat:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&dto); err != nil {
			return nil, fmt.Errorf("%w: %w", netnode.ErrInvalidWorld, err)
		}
	default:
		return nil, fmt.Errorf("unknown world format: %q", format)
	}
	return ConvertWorldDTO(dto)
}

// ConvertWorldDTO converts a decoded world, keeping node order.
func ConvertWorldDTO(dto WorldDTO) (*netnode.World, error) {
	world := &netnode.World{
		Name:          dto.Name,
		VictoryMarker: dto.VictoryMarker,
		Requests:      make([]netnode.NodeRequestor, 0, len(dto.Nodes)),
	}
	for i, n := range dto.Nodes {
		req, err := ConvertNodeDTO(n)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		world.Requests = append(world.Requests, req)
	}
	return world, nil
}

// ConvertNodeDTO turns one DTO into a typed request with defaults applied.
// Fields belonging to the other node type are rejected.
func ConvertNodeDTO(dto NodeRequestDTO) (netnode.NodeRequestor, error) {
	base := netnode.NodeRequest{
		Path: dto.Path,
		Type: dto.Type,
		UUID: valueOrDefault(dto.UUID, uuid.New().String()),
	}

	switch dto.Type {
	case netnode.FileNodeType:
		if dto.Locked != nil {
			return nil, fmt.Errorf("%w: file %s cannot be locked; use encrypted", netnode.ErrInvalidWorld, dto.Path)
		}
		return &netnode.FileCreateRequest{
			NodeRequest: base,
			Content:     valueOrDefault(dto.Content, ""),
			Encrypted:   valueOrDefault(dto.Encrypted, false),
		}, nil
	case netnode.DirNodeType:
		if dto.Content != nil || dto.Encrypted != nil {
			return nil, fmt.Errorf("%w: dir %s cannot have content or be encrypted", netnode.ErrInvalidWorld, dto.Path)
		}
		return &netnode.DirCreateRequest{
			NodeRequest: base,
			Locked:      valueOrDefault(dto.Locked, false),
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown node type %q", netnode.ErrInvalidWorld, dto.Type)
	}
}

func valueOrDefault[T any](ptr *T, defaultVal T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultVal
}
