package notes

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// codec encodes the whole note map for one file format.
type codec interface {
	name() string
	encode(map[string]Note) ([]byte, error)
	decode([]byte) (map[string]Note, error)
}

func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec{}
	case ".gob":
		return gobCodec{}
	default:
		return jsonCodec{}
	}
}

type jsonCodec struct{}

func (jsonCodec) name() string { return "json" }

func (jsonCodec) encode(m map[string]Note) ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

func (jsonCodec) decode(data []byte) (map[string]Note, error) {
	var m map[string]Note
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

type yamlCodec struct{}

func (yamlCodec) name() string { return "yaml" }

func (yamlCodec) encode(m map[string]Note) ([]byte, error) {
	return yaml.Marshal(m)
}

func (yamlCodec) decode(data []byte) (map[string]Note, error) {
	var m map[string]Note
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

type gobCodec struct{}

// gobNotes is the on-disk gob layout.
type gobNotes struct {
	Notes map[string]Note
}

func (gobCodec) name() string { return "gob" }

func (gobCodec) encode(m map[string]Note) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(gobNotes{Notes: m}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (gobCodec) decode(data []byte) (map[string]Note, error) {
	var g gobNotes
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&g); err != nil {
		return nil, err
	}
	return g.Notes, nil
}
