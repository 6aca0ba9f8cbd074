// Package processor runs one validation: read input, match the pattern, normalize keywords
package processor

import (
	"io"

	"github.com/UnendingLoop/ValidateOutput/internal/matcher"
	"github.com/UnendingLoop/ValidateOutput/internal/model"
	"github.com/UnendingLoop/ValidateOutput/internal/reader"
	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Processor struct {
	stdin  io.Reader
	logger *zap.Logger
}

// New returns a Processor. stdin is read when the path is "-"; a nil logger disables logging.
func New(stdin io.Reader, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{stdin: stdin, logger: logger}
}

// Validate reads path and validates its text against pattern.
// Failures are *model.ValidationError values.
func (p *Processor) Validate(pattern, path string) (*model.ValidationResult, error) {
	content, err := reader.ReadInput(p.stdin, path)
	if err != nil {
		p.logger.Debug("failed to read input", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	p.logger.Debug("input read", zap.String("path", path), zap.Int("bytes", len(content)))

	return p.ValidateContent(pattern, content)
}

// ValidateContent validates text that is already in memory. Line endings are
// folded the same way as for files.
func (p *Processor) ValidateContent(pattern, content string) (*model.ValidationResult, error) {
	content = reader.FoldLineEndings(content)

	m, err := matcher.Compile(pattern)
	if err != nil {
		p.logger.Debug("pattern rejected", zap.String("pattern", pattern), zap.Error(err))
		return nil, err
	}

	found := m.FindAll(content)
	p.logger.Debug("pattern applied",
		zap.String("pattern", pattern),
		zap.Stringer("rule", m.Rule()),
		zap.Int("matches", len(found)),
	)
	if len(found) == 0 {
		return nil, model.NewError(model.KindNoMatch, "", nil)
	}

	keywords := Normalize(found)
	return &model.ValidationResult{
		Keywords:    keywords,
		Fingerprint: Fingerprint(keywords),
	}, nil
}

// Normalize uppercases every match with full Unicode casing and drops repeats,
// keeping the first occurrence order.
func Normalize(found []string) model.MatchSet {
	caser := cases.Upper(language.Und)
	seen := make(map[string]struct{}, len(found))
	result := make(model.MatchSet, 0, len(found))
	for _, v := range found {
		keyword := caser.String(v)
		if _, ok := seen[keyword]; ok {
			continue
		}
		seen[keyword] = struct{}{}
		result = append(result, keyword)
	}
	return result
}

// Fingerprint hashes the keywords in order; equal sets in equal order hash equally.
func Fingerprint(keywords model.MatchSet) uint64 {
	hs := xxhash.New()
	for _, s := range keywords {
		_, _ = hs.WriteString(s)
		_, _ = hs.Write([]byte{0})
	}
	return hs.Sum64()
}
