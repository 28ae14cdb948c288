package fetcher

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectRows(t *testing.T, rowCh <-chan []string, errCh <-chan error) ([][]string, error) {
	t.Helper()
	var rows [][]string
	for row := range rowCh {
		rows = append(rows, row)
	}
	for err := range errCh {
		if err != nil {
			return rows, err
		}
	}
	return rows, nil
}

func TestStreamCSV_Basic(t *testing.T) {
	input := "a,b,c\n1,2,3\n4,5,6\n"
	rowCh, errCh := StreamCSV(context.Background(), strings.NewReader(input), CSVOptions{})
	rows, err := collectRows(t, rowCh, errCh)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"a", "b", "c"}, rows[0])
	assert.Equal(t, []string{"4", "5", "6"}, rows[2])
}

func TestStreamCSV_Semicolon(t *testing.T) {
	input := "Session;Patronyme;Taux de réussite\n2020;JEAN MOULIN;98,5%\n2020;VICTOR HUGO;100%\n"

	rowCh, errCh := StreamCSV(context.Background(), strings.NewReader(input), CSVOptions{Delimiter: ';'})
	rows, err := collectRows(t, rowCh, errCh)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Session", "Patronyme", "Taux de réussite"}, rows[0])
	assert.Equal(t, []string{"2020", "JEAN MOULIN", "98,5%"}, rows[1])
}

func TestStreamCSV_StripsBOM(t *testing.T) {
	input := "\ufeffSession;Patronyme\n2020;X\n"

	rowCh, errCh := StreamCSV(context.Background(), strings.NewReader(input), CSVOptions{Delimiter: ';'})
	rows, err := collectRows(t, rowCh, errCh)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Session", rows[0][0])
	assert.Equal(t, "2020", rows[1][0], "only the first field of the first row is stripped")
}

func TestStreamCSV_Latin1(t *testing.T) {
	input := "Libell\xe9 r\xe9gion\n\xceLE-DE-FRANCE\n"
	rowCh, errCh := StreamCSV(context.Background(), strings.NewReader(input), CSVOptions{Charset: "iso-8859-1"})
	rows, err := collectRows(t, rowCh, errCh)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Libellé région", rows[0][0])
	assert.Equal(t, "ÎLE-DE-FRANCE", rows[1][0])
}

func TestStreamCSV_UnknownCharset(t *testing.T) {
	rowCh, errCh := StreamCSV(context.Background(), strings.NewReader("a\n"), CSVOptions{Charset: "klingon"})
	_, err := collectRows(t, rowCh, errCh)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported charset")
}

func TestStreamCSV_ContextCancellation(t *testing.T) {
	var sb strings.Builder
	for range 10000 {
		sb.WriteString("a,b,c\n")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rowCh, errCh := StreamCSV(ctx, strings.NewReader(sb.String()), CSVOptions{})

	count := 0
	for range rowCh {
		count++
		if count >= 5 {
			cancel()
			break
		}
	}
	for range rowCh {
	}

	var gotErr error
	for err := range errCh {
		if err != nil {
			gotErr = err
		}
	}
	// Either the goroutine noticed the cancellation or it finished first.
	if gotErr != nil {
		assert.Contains(t, gotErr.Error(), "context cancelled")
	}
}

func TestStreamCSV_Empty(t *testing.T) {
	rowCh, errCh := StreamCSV(context.Background(), strings.NewReader(""), CSVOptions{})
	rows, err := collectRows(t, rowCh, errCh)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStreamCSV_LazyQuotes(t *testing.T) {
	input := "a;b\n1;COLLEGE \"LES \"TILLEULS\"\n"
	rowCh, errCh := StreamCSV(context.Background(), strings.NewReader(input), CSVOptions{
		Delimiter:  ';',
		LazyQuotes: true,
	})
	rows, err := collectRows(t, rowCh, errCh)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestStreamCSV_MalformedWithoutLazyQuotes(t *testing.T) {
	input := "a;b\n1;\"unterminated\n"
	rowCh, errCh := StreamCSV(context.Background(), strings.NewReader(input), CSVOptions{Delimiter: ';'})
	_, err := collectRows(t, rowCh, errCh)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv: read row")
}

func TestDecodeReader_UTF8Passthrough(t *testing.T) {
	r := strings.NewReader("x")
	for _, cs := range []string{"", "utf-8", "UTF8"} {
		got, err := DecodeReader(r, cs)
		require.NoError(t, err)
		assert.Same(t, r, got)
	}
}
