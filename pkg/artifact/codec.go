package artifact

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// document is the union of every artifact field. Decoding is done in one pass
// and the kind then selects which fields are meaningful.
type document struct {
	Kind        string
	Name        string
	NumFeatures int
	Mean        []float64
	Scale       []float64
	DataMin     []float64
	DataMax     []float64
	Coef        []float64
	Intercept   *float64
	Trees       []Tree
}

// DecodeScaler decodes a scaler artifact.
func DecodeScaler(data []byte) (Scaler, error) {
	doc, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}

	switch doc.Kind {
	case KindStandardScaler:
		s, err := NewStandardScaler(doc.Mean, doc.Scale)
		if err != nil {
			return nil, errors.Wrap(err, KindStandardScaler)
		}

		return s, nil
	case KindMinMaxScaler:
		s, err := NewMinMaxScaler(doc.DataMin, doc.DataMax)
		if err != nil {
			return nil, errors.Wrap(err, KindMinMaxScaler)
		}

		return s, nil
	case "":
		return nil, errors.New("missing kind")
	default:
		return nil, errors.Errorf("unsupported scaler kind %q", doc.Kind)
	}
}

// DecodeModel decodes a model artifact.
func DecodeModel(data []byte) (Model, error) {
	doc, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}

	switch doc.Kind {
	case KindLogisticRegression, KindLinearSVM:
		if doc.Intercept == nil {
			return nil, errors.Errorf("%s: missing intercept", doc.Kind)
		}

		var (
			m   Model
			err error
		)
		if doc.Kind == KindLogisticRegression {
			m, err = NewLogisticRegression(doc.Name, doc.Coef, *doc.Intercept)
		} else {
			m, err = NewLinearSVM(doc.Name, doc.Coef, *doc.Intercept)
		}
		if err != nil {
			return nil, errors.Wrap(err, doc.Kind)
		}

		return m, nil
	case KindRandomForest:
		m, err := NewRandomForest(doc.Name, doc.NumFeatures, doc.Trees)
		if err != nil {
			return nil, errors.Wrap(err, KindRandomForest)
		}

		return m, nil
	case "":
		return nil, errors.New("missing kind")
	default:
		return nil, errors.Errorf("unsupported model kind %q", doc.Kind)
	}
}

func decodeDocument(data []byte) (*document, error) {
	d := jx.DecodeBytes(data)
	if d.Next() != jx.Object {
		return nil, errors.New("artifact must be a JSON object")
	}

	var doc document
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "kind":
			doc.Kind, err = d.Str()
		case "name":
			doc.Name, err = d.Str()
		case "n_features":
			doc.NumFeatures, err = d.Int()
		case "mean":
			doc.Mean, err = decodeFloats(d)
		case "scale":
			doc.Scale, err = decodeFloats(d)
		case "data_min":
			doc.DataMin, err = decodeFloats(d)
		case "data_max":
			doc.DataMax, err = decodeFloats(d)
		case "coef":
			doc.Coef, err = decodeFloats(d)
		case "intercept":
			var v float64
			v, err = d.Float64()
			doc.Intercept = &v
		case "trees":
			doc.Trees, err = decodeTrees(d)
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "field %q", key)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return &doc, nil
}

func decodeFloats(d *jx.Decoder) ([]float64, error) {
	out := make([]float64, 0, 8)
	err := d.Arr(func(d *jx.Decoder) error {
		v, err := d.Float64()
		if err != nil {
			return err
		}
		out = append(out, v)

		return nil
	})

	return out, err
}

func decodeTrees(d *jx.Decoder) ([]Tree, error) {
	var trees []Tree
	err := d.Arr(func(d *jx.Decoder) error {
		var t Tree
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			if key != "nodes" {
				return d.Skip()
			}

			return d.Arr(func(d *jx.Decoder) error {
				n, err := decodeNode(d)
				if err != nil {
					return errors.Wrapf(err, "node %d", len(t.Nodes))
				}
				t.Nodes = append(t.Nodes, n)

				return nil
			})
		}); err != nil {
			return errors.Wrapf(err, "tree %d", len(trees))
		}
		trees = append(trees, t)

		return nil
	})

	return trees, err
}

func decodeNode(d *jx.Decoder) (Node, error) {
	n := Node{Feature: leaf}
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "feature":
			n.Feature, err = d.Int()
		case "threshold":
			n.Threshold, err = d.Float64()
		case "left":
			n.Left, err = d.Int()
		case "right":
			n.Right, err = d.Int()
		case "value":
			var v []float64
			v, err = decodeFloats(d)
			if err == nil && len(v) != 2 {
				err = errors.Errorf("expected 2 class weights, got %d", len(v))
			}
			if err == nil {
				n.Value = [2]float64{v[0], v[1]}
			}
		default:
			return d.Skip()
		}

		return err
	})

	return n, err
}
