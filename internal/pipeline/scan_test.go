package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pietersz/kassabon/constants"
	"github.com/pietersz/kassabon/internal/entity"
	"github.com/pietersz/kassabon/internal/extract"
	"github.com/pietersz/kassabon/internal/parser"
)

type stubExtractor struct {
	text string
	err  error
}

func (s stubExtractor) Extract(context.Context, string) (extract.TextExtractionResult, error) {
	if s.err != nil {
		return extract.TextExtractionResult{}, s.err
	}
	return extract.TextExtractionResult{Text: s.text, Pages: 1, Method: "text-file"}, nil
}

type memRepo struct {
	saved []*entity.Receipt
}

func (m *memRepo) Save(_ context.Context, rec *entity.Receipt) error {
	m.saved = append(m.saved, rec)
	return nil
}
func (m *memRepo) GetByID(context.Context, string) (*entity.Receipt, error) { return nil, nil }
func (m *memRepo) List(context.Context) ([]*entity.Receipt, error)         { return m.saved, nil }
func (m *memRepo) Update(context.Context, *entity.Receipt) error           { return nil }
func (m *memRepo) Delete(context.Context, string) error                    { return nil }

func TestPipeline_Run(t *testing.T) {
	repo := &memRepo{}
	p := New(
		stubExtractor{text: "AH Halfvolle melk   1.29\nSUBTOTAAL   1.29"},
		parser.New(nil, nil),
		repo,
		nil,
	)

	rec, err := p.Run(context.Background(), "/bonnen/bon.txt")
	require.NoError(t, err)
	require.Len(t, rec.Items, 1)
	assert.Equal(t, "AH Halfvolle melk", rec.Items[0].Name)
	assert.InDelta(t, 1.29, rec.Total, 1e-9)

	require.Len(t, repo.saved, 1)
	assert.Equal(t, rec.ID, repo.saved[0].ID)
}

func TestPipeline_Run_ParseOnly(t *testing.T) {
	p := New(stubExtractor{text: "onleesbare bon"}, parser.New(nil, nil), nil, nil)

	rec, err := p.Run(context.Background(), "/bonnen/bon.jpg")
	require.NoError(t, err)
	assert.Empty(t, rec.Items) // nothing recognized is still a valid receipt
}

func TestPipeline_Run_ExtractionFailure(t *testing.T) {
	p := New(stubExtractor{err: errors.New("tesseract: exit status 1")}, parser.New(nil, nil), nil, nil)

	_, err := p.Run(context.Background(), "/bonnen/bon.jpg")
	assert.Error(t, err)
}

func TestListReceiptFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.pdf", "b.jpg", "c.txt", "skip.gif", "skip.docx"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "d.png"), []byte("x"), 0o644))

	paths, err := ListReceiptFiles(dir)
	require.NoError(t, err)
	require.Len(t, paths, 4)
	for _, p := range paths {
		ext := constants.NormalizeExt(filepath.Ext(p))
		_, ok := constants.AllowedExtensions[ext]
		assert.True(t, ok, p)
	}
}
