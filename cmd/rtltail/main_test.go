package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/giltho/CompCert/rtl"
	"github.com/giltho/CompCert/rtl/interp"
	"github.com/giltho/CompCert/tailcall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "rtltail")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, tailcall.DefaultConfigFile)
	require.NoError(t, initConfigurationFile(path))
	cfg, err := tailcall.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, tailcall.DefaultConfig(), cfg)
}

func TestConstantPlusArgs(t *testing.T) {
	ext := constantPlusArgs(10)
	assert.Equal(t, interp.Val(interp.Int(10)), ext(nil))
	assert.Equal(t, interp.Val(interp.Int(13)), ext([]interp.Val{interp.Int(1), interp.Int(2)}))
	assert.Equal(t, interp.Val(interp.Undef{}), ext([]interp.Val{interp.Int(1), interp.Undef{}}))
}

func TestTransformAndCheck(t *testing.T) {
	dir, err := ioutil.TempDir("", "rtltail")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	src := filepath.Join("..", "..", "tailcall", "testdata", "scenario.rtl")
	out := filepath.Join(dir, "scenario.rtl")
	cfgFile = filepath.Join(dir, tailcall.DefaultConfigFile)

	rootCmd.SetArgs([]string{"transform", "--config", cfgFile, "-o", out, src})
	require.NoError(t, rootCmd.Execute())

	orig, err := rtl.ParseFile(src)
	require.NoError(t, err)
	transformed, err := rtl.ParseFile(out)
	require.NoError(t, err)
	assert.Equal(t, "f:1 main:2", tailcall.Rewritten(orig, transformed).String())

	rootCmd.SetArgs([]string{"check", "--config", cfgFile, src, out})
	require.NoError(t, rootCmd.Execute())
}

func TestCheckFails(t *testing.T) {
	dir, err := ioutil.TempDir("", "rtltail")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	src := filepath.Join("..", "..", "tailcall", "testdata", "stackframe.rtl")
	p, err := rtl.ParseFile(src)
	require.NoError(t, err)
	// Force a tail call out of a function with a stack frame.
	for _, f := range p.Funcs {
		for _, pc := range f.Code.Points() {
			if c, ok := f.Code[pc].(*rtl.Call); ok {
				f.Code[pc] = &rtl.Tailcall{Sig: c.Sig, Callee: c.Callee, Args: c.Args}
			}
		}
	}
	bad := filepath.Join(dir, "bad.rtl")
	require.NoError(t, ioutil.WriteFile(bad, []byte(p.String()), 0644))

	rootCmd.SetArgs([]string{"check", "--config", filepath.Join(dir, "none.yaml"), src, bad})
	assert.Error(t, rootCmd.Execute())
}
