package arith

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Law names an algebraic property of a binary operation.
type Law string

const (
	Commutative Law = "Commutative" // op(a, b) == op(b, a)
	Associative Law = "Associative" // op(op(a, b), c) == op(a, op(b, c))
	Identity    Law = "Identity"    // op(a, 0) == a == op(0, a)
)

// AllLaws lists every law VerifyLaws checks, in report order.
var AllLaws = []Law{Commutative, Associative, Identity}

var (
	ErrNoSamples  = errors.New("no samples")
	ErrUnverified = errors.New("operation not verified")
	ErrMissingLaw = errors.New("missing required law")
)

// BinaryOp is an operation under law verification.
type BinaryOp[T Integer] func(a, b T) T

// Counterexample is the first operand set that broke a law.
type Counterexample struct {
	Law      Law     `json:"law" yaml:"law"`
	Operands []int64 `json:"operands" yaml:"operands"`
	Left     int64   `json:"left" yaml:"left"`
	Right    int64   `json:"right" yaml:"right"`
}

// LawReport is the outcome of VerifyLaws for one operation.
type LawReport struct {
	Op        string           `json:"op" yaml:"op"`
	Laws      []Law            `json:"laws" yaml:"laws"`                 // laws that held on every sample
	Failures  []Counterexample `json:"failures,omitempty" yaml:"failures,omitempty"`
	Samples   int              `json:"samples" yaml:"samples"`
	CheckedAt time.Time        `json:"checked_at" yaml:"checked_at"`
}

// Holds reports whether law passed.
func (r LawReport) Holds(law Law) bool {
	for _, l := range r.Laws {
		if l == law {
			return true
		}
	}
	return false
}

// VerifyLaws checks op against every law in AllLaws using all pairs and
// triples drawn from samples. The cost is cubic in len(samples).
func VerifyLaws[T Integer](name string, op BinaryOp[T], samples []T) (LawReport, error) {
	if len(samples) == 0 {
		return LawReport{}, fmt.Errorf("verify %s: %w", name, ErrNoSamples)
	}

	report := LawReport{
		Op:        name,
		Samples:   len(samples),
		CheckedAt: time.Now(),
	}

	checks := []func() *Counterexample{
		func() *Counterexample { return commutative(op, samples) },
		func() *Counterexample { return associative(op, samples) },
		func() *Counterexample { return identity(op, samples) },
	}
	for i, check := range checks {
		if ce := check(); ce != nil {
			report.Failures = append(report.Failures, *ce)
			continue
		}
		report.Laws = append(report.Laws, AllLaws[i])
	}

	return report, nil
}

func commutative[T Integer](op BinaryOp[T], samples []T) *Counterexample {
	for _, a := range samples {
		for _, b := range samples {
			if l, r := op(a, b), op(b, a); l != r {
				return &Counterexample{
					Law:      Commutative,
					Operands: []int64{int64(a), int64(b)},
					Left:     int64(l),
					Right:    int64(r),
				}
			}
		}
	}
	return nil
}

func associative[T Integer](op BinaryOp[T], samples []T) *Counterexample {
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				if l, r := op(op(a, b), c), op(a, op(b, c)); l != r {
					return &Counterexample{
						Law:      Associative,
						Operands: []int64{int64(a), int64(b), int64(c)},
						Left:     int64(l),
						Right:    int64(r),
					}
				}
			}
		}
	}
	return nil
}

func identity[T Integer](op BinaryOp[T], samples []T) *Counterexample {
	for _, a := range samples {
		if l, r := op(a, 0), op(0, a); l != a || r != a {
			return &Counterexample{
				Law:      Identity,
				Operands: []int64{int64(a)},
				Left:     int64(l),
				Right:    int64(r),
			}
		}
	}
	return nil
}

// LawRegistry holds verified law reports keyed by operation name.
// It is safe for concurrent use.
type LawRegistry struct {
	mu      sync.RWMutex
	reports map[string]LawReport
}

// NewLawRegistry creates an empty registry.
func NewLawRegistry() *LawRegistry {
	return &LawRegistry{
		reports: make(map[string]LawReport),
	}
}

// Register stores report under report.Op, replacing any earlier report.
func (r *LawRegistry) Register(report LawReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[report.Op] = report
}

// Lookup returns the report registered for op.
func (r *LawRegistry) Lookup(op string) (LawReport, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	report, ok := r.reports[op]
	return report, ok
}

// Require returns an error unless op is registered and every law in laws
// held when it was verified.
func (r *LawRegistry) Require(op string, laws ...Law) error {
	report, ok := r.Lookup(op)
	if !ok {
		return fmt.Errorf("operation %s: %w", op, ErrUnverified)
	}

	for _, law := range laws {
		if !report.Holds(law) {
			return fmt.Errorf("operation %s: %w: %s (has: %v)", op, ErrMissingLaw, law, report.Laws)
		}
	}
	return nil
}
