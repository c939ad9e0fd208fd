package driver

import (
	"io/fs"
	"log"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/asm14/object"
)

func newTestDriver(sources map[string][]string) (drv *Driver, mem *object.MemFS, diags *strings.Builder) {
	mem = object.NewMemFS()
	for name, lines := range sources {
		mem.Files[name] = &fstest.MapFile{Data: []byte(strings.Join(lines, "\n") + "\n")}
	}

	diags = &strings.Builder{}
	drv = NewDriver(mem, mem)
	drv.Diagnostics = diags

	return
}

func readFile(t *testing.T, mem *object.MemFS, name string) string {
	data, err := mem.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

var macroProgram = []string{
	"mcr twice",
	"  inc r1",
	"  inc r1",
	"endmcr",
	"MAIN: mov r1, r2",
	"twice",
	`LEN: .string "hi"`,
	".extern X",
	"jmp X",
	".entry MAIN",
}

func TestDriverRun(t *testing.T) {
	assert := assert.New(t)

	drv, mem, diags := newTestDriver(map[string][]string{
		"prog.as": macroProgram,
	})

	err := drv.Run("prog")
	assert.NoError(err)
	assert.Equal("", diags.String())

	assert.Equal(strings.Join([]string{
		"MAIN: mov r1, r2",
		"  inc r1",
		"  inc r1",
		`LEN: .string "hi"`,
		".extern X",
		"jmp X",
		".entry MAIN",
		"",
	}, "\n"), readFile(t, mem, "prog.am"))

	ob := readFile(t, mem, "prog.ob")
	assert.True(strings.HasPrefix(ob, "8\t3\n"), ob)
	assert.Equal(8+1+3, strings.Count(ob, "\n")-1)

	assert.Equal("MAIN\t100\n", readFile(t, mem, "prog.ent"))
	assert.Equal("X\t107\n", readFile(t, mem, "prog.ext"))
}

func TestDriverWarnings(t *testing.T) {
	assert := assert.New(t)

	drv, mem, diags := newTestDriver(map[string][]string{
		"warn.as": {
			".data 1",
			"stop",
		},
	})

	err := drv.Run("warn")
	assert.NoError(err)
	assert.Equal("warn.am:1: warning: data or string directive without a pointing symbol\n", diags.String())
	assert.True(mem.Exists("warn.ob"))
	assert.False(mem.Exists("warn.ent"))
	assert.False(mem.Exists("warn.ext"))

	diags.Reset()
	drv.Color = true
	assert.NoError(drv.Run("warn"))
	assert.Equal("warn.am:1: \x1b[1;33mwarning\x1b[0m: data or string directive without a pointing symbol\n", diags.String())
}

func TestDriverMissing(t *testing.T) {
	assert := assert.New(t)

	drv, mem, diags := newTestDriver(nil)

	err := drv.Run("missing")
	assert.ErrorIs(err, fs.ErrNotExist)

	var ferr *ErrFile
	if assert.ErrorAs(err, &ferr) {
		assert.Equal("missing.as", ferr.File)
	}

	assert.True(strings.HasPrefix(diags.String(), "error: missing.as: "), diags.String())
	assert.False(mem.Exists("missing.am"))
}

func TestDriverPreprocessError(t *testing.T) {
	assert := assert.New(t)

	drv, mem, diags := newTestDriver(map[string][]string{
		"bad.as": {
			"stop",
			"endmcr",
		},
	})

	err := drv.Run("bad")
	assert.Error(err)
	assert.Equal("bad.as:2: error: endmcr without mcr\n", diags.String())
	assert.False(mem.Exists("bad.am"))
	assert.False(mem.Exists("bad.ob"))
}

func TestDriverAssembleError(t *testing.T) {
	assert := assert.New(t)

	drv, mem, diags := newTestDriver(map[string][]string{
		"bad.as": {
			".entry MAIN",
			"stop",
		},
	})
	drv.KeepExpanded = false

	err := drv.Run("bad")
	assert.Error(err)
	assert.Equal("bad.am:1: error: symbol 'MAIN' was declared as entry but never defined\n", diags.String())
	assert.False(mem.Exists("bad.am"))
	assert.False(mem.Exists("bad.ob"))
	assert.False(mem.Exists("bad.ent"))
}

func TestDriverKeepExpanded(t *testing.T) {
	assert := assert.New(t)

	drv, mem, _ := newTestDriver(map[string][]string{
		"prog.as": macroProgram,
	})

	drv.KeepExpanded = false
	assert.NoError(drv.Run("prog"))
	assert.False(mem.Exists("prog.am"))
	assert.True(mem.Exists("prog.ob"))

	drv.KeepExpanded = true
	assert.NoError(drv.Run("prog"))
	assert.True(mem.Exists("prog.am"))
}

func TestDriverFlat(t *testing.T) {
	assert := assert.New(t)

	drv, mem, _ := newTestDriver(map[string][]string{
		"src/prog.as": macroProgram,
	})

	assert.NoError(drv.Run("src/prog"))
	assert.True(mem.Exists("src/prog.ob"))

	out, err := object.Subdir(mem, "out")
	assert.NoError(err)

	drv.Output = out
	drv.Flat = true
	assert.NoError(drv.Run("src/prog"))
	assert.True(mem.Exists("out/prog.ob"))
	assert.True(mem.Exists("out/prog.am"))
	assert.Equal("MAIN\t100\n", readFile(t, mem, "out/prog.ent"))
}

func TestDriverRunAll(t *testing.T) {
	assert := assert.New(t)

	drv, mem, diags := newTestDriver(map[string][]string{
		"first.as":  macroProgram,
		"second.as": {"bogus"},
		"third.as":  {"stop"},
	})

	failed := drv.RunAll([]string{"first", "second", "missing", "third"})
	assert.Equal(2, failed)

	assert.True(mem.Exists("first.ob"))
	assert.False(mem.Exists("second.ob"))
	assert.True(mem.Exists("third.ob"))
	assert.Equal("1\t0\n....////......\n\n", readFile(t, mem, "third.ob"))

	assert.Contains(diags.String(), "second.am:1: error: 'bogus' unknown keyword\n")
	assert.Contains(diags.String(), "missing.as")

	assert.Equal(0, drv.RunAll(nil))
}

func TestDriverVerboseListing(t *testing.T) {
	assert := assert.New(t)

	var logged strings.Builder
	log.SetOutput(&logged)
	defer log.SetOutput(os.Stderr)

	drv, _, _ := newTestDriver(map[string][]string{
		"third.as": {"stop"},
	})
	drv.Verbose = true

	assert.NoError(drv.Run("third"))
	assert.Contains(logged.String(), "third.am: 0100 ....////......\n")
}
