package crypto

import "fmt"

// Chain applies several codecs in sequence. Decode runs the stages backwards.
type Chain struct {
	stages []Codec
}

func NewChain(stages ...Codec) (*Chain, error) {
	if len(stages) == 0 {
		return nil, ErrEmptyChain
	}
	for i, s := range stages {
		if s == nil {
			return nil, fmt.Errorf("stage %d is nil", i)
		}
	}
	return &Chain{stages: append([]Codec(nil), stages...)}, nil
}

// Stages returns the kinds of the chained codecs in encode order.
func (c *Chain) Stages() []Kind {
	kinds := make([]Kind, len(c.stages))
	for i, s := range c.stages {
		kinds[i] = s.Kind()
	}
	return kinds
}

func (c *Chain) Encode(text string) (string, error) {
	var err error
	for i, s := range c.stages {
		text, err = s.Encode(text)
		if err != nil {
			return "", fmt.Errorf("%s failed at stage %d: %w", s.Kind(), i, err)
		}
	}
	return text, nil
}

// lossy is implemented by codecs whose Decode does not restore the exact
// input of Encode.
type lossy interface {
	Lossy() bool
}

// Reversible reports whether Decode restores the chain's input. A lossy
// stage may only run first, where no other stage decodes its output.
func (c *Chain) Reversible() bool {
	return c.lossyStage() < 0
}

func (c *Chain) lossyStage() int {
	for i := 1; i < len(c.stages); i++ {
		if l, ok := c.stages[i].(lossy); ok && l.Lossy() {
			return i
		}
	}
	return -1
}

func (c *Chain) Decode(text string) (string, error) {
	if i := c.lossyStage(); i >= 0 {
		return "", fmt.Errorf("%w: %s at stage %d drops letters the earlier stages need",
			ErrIrreversibleChain, c.stages[i].Kind(), i)
	}

	var err error
	for i := len(c.stages) - 1; i >= 0; i-- {
		s := c.stages[i]
		text, err = s.Decode(text)
		if err != nil {
			return "", fmt.Errorf("%s failed at stage %d: %w", s.Kind(), i, err)
		}
	}
	return text, nil
}

func (c *Chain) Kind() Kind {
	return KindChain
}
