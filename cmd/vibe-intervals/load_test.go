package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDetectFormatByExtension(t *testing.T) {
	assert.Equal(t, "gff", detectFormat("annotations.gff3"))
	assert.Equal(t, "gff", detectFormat("annotations.GFF"))
	assert.Equal(t, "gff", detectFormat("annotations.gtf.gz"))
	assert.Equal(t, "bed", detectFormat("regions.bed"))
	assert.Equal(t, "bed", detectFormat("regions.bed.gz"))
}

func TestDetectFormatByContent(t *testing.T) {
	gffPath := writeTemp(t, "data.txt",
		"chr1\tsrc\tgene\t100\t200\t.\t+\t.\tID=g1\n")
	assert.Equal(t, "gff", detectFormat(gffPath))

	directivePath := writeTemp(t, "data2.txt", "##gff-version 3\n")
	assert.Equal(t, "gff", detectFormat(directivePath))

	bedPath := writeTemp(t, "data3.txt", "chr1\t100\t200\n")
	assert.Equal(t, "bed", detectFormat(bedPath))
}

func TestLoadRecordsGFF(t *testing.T) {
	path := writeTemp(t, "sample.gff3", `##gff-version 3
chr1	src	gene	100	200	.	+	.	ID=g1
chr1	src	gene	300	400	.	-	.	ID=g2
`)

	records, err := loadRecords(path, "", zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestLoadRecordsBEDFallback(t *testing.T) {
	path := writeTemp(t, "weird.bed", "foo bar baz qux quux\n")

	records, err := loadRecords(path, "bed", zap.NewNop())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].IsFallback())
}
