package ast

import (
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// vectorDoc is the document form of a vector node in YAML and msgpack output.
type vectorDoc struct {
	Type  string  `yaml:"type" msgpack:"type"`
	Items []*Node `yaml:"items" msgpack:"items"`
}

func (n *Node) document() interface{} {
	if n.IsVector() {
		return vectorDoc{
			Type:  n.Type().String(),
			Items: n.List(),
		}
	}
	return n.Value()
}

// MarshalYAML renders values as scalars and vectors as a mapping with their
// type and items.
func (n *Node) MarshalYAML() (interface{}, error) {
	return n.document(), nil
}

// EncodeMsgpack encodes the node with the same layout as MarshalYAML.
func (n *Node) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(n.document())
}

var (
	_ = yaml.Marshaler(&Node{})
	_ = msgpack.CustomEncoder(&Node{})
)
