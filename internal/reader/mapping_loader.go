package reader

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/sci-calc/pkg/apis/importmapping"
)

type MappingLoader interface {
	Load(validate bool) (*importmapping.ImportMapping, error)
}

type YAMLMappingLoader struct {
	reader io.Reader
}

func NewYAMLMappingLoader(reader io.Reader) *YAMLMappingLoader {
	return &YAMLMappingLoader{
		reader: reader,
	}
}

func (l *YAMLMappingLoader) Load(validate bool) (*importmapping.ImportMapping, error) {
	decoder := yaml.NewDecoder(l.reader)
	decoder.KnownFields(true)

	var mapping importmapping.ImportMapping
	if err := decoder.Decode(&mapping); err != nil {
		return nil, err
	}
	if validate {
		if err := mapping.Validate(); err != nil {
			return nil, err
		}
	}
	return &mapping, nil
}
