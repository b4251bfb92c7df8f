package model

import (
	"strings"

	"github.com/google/uuid"
)

// uidNamespace scopes the name-based UUIDs generated for questions.
var uidNamespace = uuid.MustParse("5b0f3c8e-6a52-4d0a-9d43-2f0c7f5e9a11")

// StableUID derives a deterministic identifier from the question kind and
// text. The same question always yields the same UID across runs.
func StableUID(q Question) string {
	name := string(q.EffectiveKind()) + "\x00" + strings.TrimSpace(q.Text)
	return uuid.NewSHA1(uidNamespace, []byte(name)).String()
}

// WithStableUIDs returns a copy of quiz where every question lacking a UID
// receives StableUID. Existing identifiers are kept.
func WithStableUIDs(quiz Quiz) Quiz {
	out := quiz.Clone()
	assignStableUIDs(&out)
	return out
}

// StableUIDDecorator assigns stable UIDs in place.
func StableUIDDecorator() Decorator {
	return DecoratorFunc(func(quiz *Quiz) error {
		assignStableUIDs(quiz)
		return nil
	})
}

func assignStableUIDs(quiz *Quiz) {
	if quiz == nil {
		return
	}
	for i := range quiz.Questions {
		if strings.TrimSpace(quiz.Questions[i].UID) != "" {
			continue
		}
		quiz.Questions[i].UID = StableUID(quiz.Questions[i])
	}
}
