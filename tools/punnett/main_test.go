package main

import (
	"bytes"
	"flag"
	"testing"

	unknownLocusPolicy "leopa/api/models/constants/unknown-locus-policy"
	z "leopa/api/models/constants/zygosity"
	"leopa/api/repositories/local"
	"leopa/api/services/genetics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func bundledCatalog(t *testing.T) genetics.MorphTable {
	morphs, err := local.GetMorphs("")
	require.NoError(t, err)
	return genetics.NewMorphTable(morphs...)
}

func TestParseArgs(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"-p1", "eclipse=het", "-p2", "eclipse", "-unknown", "skip", "-n", "3", "-plain"})
	require.NoError(t, err)
	assert.Equal(t, "eclipse=het", o.Parent1)
	assert.Equal(t, "eclipse", o.Parent2)
	assert.Equal(t, string(unknownLocusPolicy.Skip), o.Policy)
	assert.Equal(t, 3, o.Limit)
	assert.True(t, o.Plain)

	_, err = ParseArgs(newFS(), []string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)

	_, err = ParseArgs(newFS(), []string{"-n", "-1"})
	assert.Error(t, err)

	_, err = ParseArgs(newFS(), []string{"extra"})
	assert.Error(t, err)
}

func TestParseParent(t *testing.T) {
	catalog := bundledCatalog(t)

	parent, err := parseParent("eclipse, mack_snow=super ,enigma,radar", catalog)
	require.NoError(t, err)
	assert.Equal(t, []string{"eclipse", "mack_snow", "enigma", "radar"}, parent.Loci())

	status, _ := parent.Status("eclipse")
	assert.Equal(t, z.RecessiveHomozygous, status)
	status, _ = parent.Status("mack_snow")
	assert.Equal(t, z.CodominantSuper, status)
	status, _ = parent.Status("enigma")
	assert.Equal(t, z.DominantHeterozygous, status)
	status, present := parent.Status("radar")
	assert.True(t, present)
	assert.Nil(t, status)

	_, err = parseParent("enigma=possible_het", catalog)
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-p1", "mack_snow=heterozygous", "-p2", "mack_snow=heterozygous", "-plain"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "3 possible outcomes")
	assert.Contains(t, stdout.String(), "50.00%")
	assert.Contains(t, stdout.String(), "Super Snow")
}

func TestRun_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"-p1", "tremper_albino,bell_albino=het"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "albino")

	stderr.Reset()
	assert.Equal(t, 1, run([]string{"-p1", "eclipes"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "eclipse")

	stderr.Reset()
	assert.Equal(t, 0, run([]string{"-p1", "eclipes", "-unknown", "skip", "-plain"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "skipped unknown morphs: eclipes")
}

func TestRun_List(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-list", "-plain"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "tremper_albino")
	assert.Contains(t, stdout.String(), "codominant")
}
