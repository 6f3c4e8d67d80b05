package file

import (
	"context"
	"path/filepath"

	"terminal-quiz/internal/domain"
	"terminal-quiz/internal/record"
)

// BankLoader reads question banks from a directory, one file per topic.
type BankLoader struct {
	dir string
	rep Reporter
}

func NewBankLoader(dir string, rep Reporter) *BankLoader {
	return &BankLoader{dir: dir, rep: rep}
}

// LoadBank reads the bank named by topic.FileName, which must stay inside dir.
func (l *BankLoader) LoadBank(ctx context.Context, topic domain.Topic) ([]domain.Question, error) {
	if !filepath.IsLocal(topic.FileName) {
		return nil, domain.FieldError("file_name", domain.ErrInvalidFileName)
	}
	return LoadFile(ctx, filepath.Join(l.dir, topic.FileName), record.ParseQuestion, l.rep)
}
