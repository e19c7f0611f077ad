package optimization

// Individual is a candidate solution: one gene per denomination
type Individual []int

// NewIndividual creates an all-zero individual of the given length
func NewIndividual(length int) Individual {
	return make(Individual, length)
}

// Clone returns a copy that shares no memory with the original
func (ind Individual) Clone() Individual {
	if ind == nil {
		return nil
	}
	c := make(Individual, len(ind))
	copy(c, ind)
	return c
}

// Total returns the amount represented by the individual
func (ind Individual) Total(denominations []int) int {
	total := 0
	for i, gene := range ind {
		if i >= len(denominations) {
			break
		}
		total += gene * denominations[i]
	}
	return total
}

// CoinCount returns the number of coins used
func (ind Individual) CoinCount() int {
	count := 0
	for _, gene := range ind {
		count += gene
	}
	return count
}

// Candidate is an individual together with its cached fitness
type Candidate struct {
	Genes   Individual `json:"genes"`
	Fitness float64    `json:"fitness"`
}

// Clone creates a deep copy of this candidate
func (c Candidate) Clone() Candidate {
	return Candidate{
		Genes:   c.Genes.Clone(),
		Fitness: c.Fitness,
	}
}
