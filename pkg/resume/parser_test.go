package resume

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body bytes.Buffer
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() +
		`</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"word/document.xml":            document,
		"word/_rels/document.xml.rels": documentRels,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestParseResumeText_Docx(t *testing.T) {
	data := buildDocx(t,
		"Jane Doe",
		"Python developer with 5 years experience",
		"Django &amp; Flask",
	)

	text, err := ParseResumeText("cv.DOCX", data)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nPython developer with 5 years experience\nDjango & Flask", text)
}

func TestParseResumeText_DocxCharacterReferences(t *testing.T) {
	data := buildDocx(t, "O&#39;Neil&#x2019;s C&#x2B;&#x2B; &lt;lead&gt;")
	text, err := ParseResumeText("cv.docx", data)
	require.NoError(t, err)
	assert.Equal(t, "O'Neil\u2019s C++ <lead>", text)
}

func TestParseResumeText_DocTreatedAsDocx(t *testing.T) {
	data := buildDocx(t, "Go engineer")
	text, err := ParseResumeText("legacy.doc", data)
	require.NoError(t, err)
	assert.Equal(t, "Go engineer", text)
}

func TestParseResumeText_EmptyDocx(t *testing.T) {
	text, err := ParseResumeText("empty.docx", buildDocx(t))
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestParseResumeText_Errors(t *testing.T) {
	_, err := ParseResumeText("resume.txt", []byte("plain"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ParseResumeText("resume", []byte("plain"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ParseResumeText("broken.docx", []byte("not a zip"))
	assert.Error(t, err)

	_, err = ParseResumeText("broken.pdf", []byte("not a pdf"))
	assert.Error(t, err)
}

func TestAllowed(t *testing.T) {
	for _, name := range []string{"a.pdf", "a.PDF", "b.docx", "c.doc"} {
		assert.True(t, Allowed(name), name)
	}
	for _, name := range []string{"a.txt", "a", "a.pdf.exe", ".env"} {
		assert.False(t, Allowed(name), name)
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b\nc", normalizeWhitespace("  a \t  b \n\n  \n c  "))
}
