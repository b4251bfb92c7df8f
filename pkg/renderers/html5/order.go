package html5

import (
	"math/rand/v2"
	"sync"

	"github.com/goliatone/go-quizgen/pkg/model"
)

// orderingPolicy decides the sequence answers are emitted in. A nil rng uses
// the process-wide generator; an injected one is serialised by mu.
type orderingPolicy struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newOrderingPolicy(src rand.Source) *orderingPolicy {
	if src == nil {
		return &orderingPolicy{}
	}
	return &orderingPolicy{rng: rand.New(src)}
}

// shouldRandomize resolves the effective flag for question within quiz.
func shouldRandomize(quiz model.Quiz, question model.Question) bool {
	if quiz.SuppressRandom {
		return false
	}
	if question.Randomize != nil {
		return *question.Randomize
	}
	return quiz.Randomize
}

// order returns a copy of the question's answers, shuffled when randomize is
// set. The question itself is never modified.
func (p *orderingPolicy) order(answers []model.Answer, randomize bool) []model.Answer {
	out := append([]model.Answer(nil), answers...)
	if !randomize || len(out) < 2 {
		return out
	}

	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if p == nil || p.rng == nil {
		rand.Shuffle(len(out), swap)
		return out
	}

	p.mu.Lock()
	p.rng.Shuffle(len(out), swap)
	p.mu.Unlock()
	return out
}
