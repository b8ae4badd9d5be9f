package render

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

var _ Formatter = (*YAML)(nil)

type YAML struct{}

func NewYAML() *YAML { return &YAML{} }

func (*YAML) Name() string { return "yaml" }

// Format writes a sequence of mappings whose keys keep column order.
func (*YAML) Format(header []string, rows [][]any, w io.Writer) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode}
	for i, row := range rows {
		if len(row) != len(header) {
			return fmt.Errorf("row %d has %d values, expected %d", i, len(row), len(header))
		}
		m := &yaml.Node{Kind: yaml.MappingNode}
		for j, key := range header {
			val := &yaml.Node{}
			v := row[j]
			if ts, ok := v.(time.Time); ok {
				v = ts.Format(time.RFC3339)
			}
			if err := val.Encode(v); err != nil {
				return fmt.Errorf("field %s: %w", key, err)
			}
			m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, val)
		}
		doc.Content = append(doc.Content, m)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
