package artifact

import "fmt"

const leaf = -1

// Node is a single decision tree node. Leaves have Feature == -1 and carry the
// per-class sample weights in Value.
type Node struct {
	Feature   int
	Threshold float64
	Left      int
	Right     int
	Value     [2]float64
}

// Tree is a binary decision tree rooted at Nodes[0].
type Tree struct {
	Nodes []Node
}

func (t Tree) validate(numFeatures int) error {
	if len(t.Nodes) == 0 {
		return fmt.Errorf("tree has no nodes")
	}
	for i, n := range t.Nodes {
		if n.Feature == leaf {
			if n.Value[0] < 0 || n.Value[1] < 0 || n.Value[0]+n.Value[1] == 0 {
				return fmt.Errorf("leaf %d has invalid value %v", i, n.Value)
			}

			continue
		}
		if n.Feature < 0 || n.Feature >= numFeatures {
			return fmt.Errorf("node %d references feature %d out of %d", i, n.Feature, numFeatures)
		}
		// Children must come after their parent so every walk terminates.
		if n.Left <= i || n.Left >= len(t.Nodes) || n.Right <= i || n.Right >= len(t.Nodes) {
			return fmt.Errorf("node %d has invalid children %d, %d", i, n.Left, n.Right)
		}
	}

	return nil
}

func (t Tree) proba(x []float64) [2]float64 {
	i := 0
	for t.Nodes[i].Feature != leaf {
		n := t.Nodes[i]
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}

	v := t.Nodes[i].Value
	total := v[0] + v[1]

	return [2]float64{v[0] / total, v[1] / total}
}

// RandomForest averages the class distributions of its trees.
type RandomForest struct {
	name        string
	numFeatures int
	trees       []Tree
}

// NewRandomForest validates and returns a RandomForest.
func NewRandomForest(name string, numFeatures int, trees []Tree) (*RandomForest, error) {
	if numFeatures <= 0 {
		return nil, fmt.Errorf("n_features must be positive, got %d", numFeatures)
	}
	if len(trees) == 0 {
		return nil, fmt.Errorf("forest has no trees")
	}
	for i, t := range trees {
		if err := t.validate(numFeatures); err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
	}
	if name == "" {
		name = "Random Forest"
	}

	return &RandomForest{name: name, numFeatures: numFeatures, trees: trees}, nil
}

func (m *RandomForest) Name() string     { return m.name }
func (m *RandomForest) Kind() string     { return KindRandomForest }
func (m *RandomForest) NumFeatures() int { return m.numFeatures }

// Predict returns the class with the highest averaged probability. Ties go to class 0.
func (m *RandomForest) Predict(x []float64) (int, error) {
	p, err := m.PredictProba(x)
	if err != nil {
		return 0, err
	}
	if p[1] > p[0] {
		return 1, nil
	}

	return 0, nil
}

func (m *RandomForest) PredictProba(x []float64) ([2]float64, error) {
	if len(x) != m.numFeatures {
		return [2]float64{}, shapeError(KindRandomForest, m.numFeatures, len(x))
	}

	var sum [2]float64
	for _, t := range m.trees {
		p := t.proba(x)
		sum[0] += p[0]
		sum[1] += p[1]
	}

	n := float64(len(m.trees))

	return [2]float64{sum[0] / n, sum[1] / n}, nil
}
