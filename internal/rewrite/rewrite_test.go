package rewrite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentTaggedPrint(t *testing.T) {
	out, changed := Content(`print("[Network] Request failed")`, Rules(DefaultOptions()))

	assert.True(t, changed)
	assert.Equal(t, `Logger.shared.log("Request failed", category: .network, level: .info)`, out)
}

func TestContentPlainPrint(t *testing.T) {
	out, changed := Content(`print("Hello world")`, Rules(DefaultOptions()))

	assert.True(t, changed)
	assert.Equal(t, `Logger.shared.log("Hello world", category: .general, level: .info)`, out)
}

func TestContentInterpolatedPrint(t *testing.T) {
	out, changed := Content(`print("Value is", x)`, Rules(DefaultOptions()))

	assert.True(t, changed)
	assert.Equal(t, `Logger.shared.log("Value is: x", category: .general, level: .info)`, out)
}

func TestContentMixedCaseTagIsLowered(t *testing.T) {
	out, _ := Content(`print("[FirebaseManager] sync complete")`, Rules(DefaultOptions()))

	assert.Equal(t, `Logger.shared.log("sync complete", category: .firebasemanager, level: .info)`, out)
}

func TestContentCategoryOverride(t *testing.T) {
	opts := DefaultOptions()
	opts.Categories["networking"] = "network"

	out, _ := Content(`print("[Networking] timeout")`, Rules(opts))

	assert.Equal(t, `Logger.shared.log("timeout", category: .network, level: .info)`, out)
}

func TestContentMultipleCallsInOneFile(t *testing.T) {
	in := `func load() {
    print("[Storage] loading")
    print("done")
    print("count", items.count)
}
`
	want := `func load() {
    Logger.shared.log("loading", category: .storage, level: .info)
    Logger.shared.log("done", category: .general, level: .info)
    Logger.shared.log("count: items.count", category: .general, level: .info)
}
`
	out, changed := Content(in, Rules(DefaultOptions()))

	assert.True(t, changed)
	assert.Equal(t, want, out)
}

func TestContentIdempotent(t *testing.T) {
	rules := Rules(DefaultOptions())

	once, changed := Content(`print("[Game] score updated")`+"\n"+`print("tick")`, rules)
	require.True(t, changed)

	twice, changed := Content(once, rules)
	assert.False(t, changed)
	assert.Equal(t, once, twice)
}

func TestContentNoPrintCallsUnchanged(t *testing.T) {
	in := `struct Board {
    let rows: Int
    let columns: Int
}
`
	out, changed := Content(in, Rules(DefaultOptions()))

	assert.False(t, changed)
	assert.Equal(t, in, out)
}

func TestContentLeavesNonLiteralPrintsAlone(t *testing.T) {
	// No quoted literal as the first argument, so no rule matches.
	in := `print(score)`
	out, changed := Content(in, Rules(DefaultOptions()))

	assert.False(t, changed)
	assert.Equal(t, in, out)
}

func TestUpdateFileRewritesInPlace(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "App.swift")
	require.NoError(t, os.WriteFile(path, []byte(`print("Hello world")`+"\n"), 0600))

	modified, err := UpdateFile(path, Rules(DefaultOptions()))
	require.NoError(t, err)
	assert.True(t, modified)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `Logger.shared.log("Hello world", category: .general, level: .info)`+"\n", string(data))

	// Permission bits survive the rewrite.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestUpdateFileSkipsWriteWhenUnchanged(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "Model.swift")
	content := "struct Model {}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	before, err := os.Stat(path)
	require.NoError(t, err)

	modified, err := UpdateFile(path, Rules(DefaultOptions()))
	require.NoError(t, err)
	assert.False(t, modified)

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime(), "unchanged file must not be rewritten")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestUpdateFileMissingFile(t *testing.T) {
	_, err := UpdateFile(filepath.Join(t.TempDir(), "gone.swift"), Rules(DefaultOptions()))
	assert.Error(t, err)
}
