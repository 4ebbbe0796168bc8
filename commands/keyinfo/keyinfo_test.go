package keyinfo

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin []byte, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(bytes.NewReader(stdin))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeKey(t *testing.T, dir string) (string, []byte) {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	require.NoError(t, err)
	name := filepath.Join(dir, "key.pem")
	require.NoError(t, os.WriteFile(name, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), 0600))
	return name, der
}

func TestClassify(t *testing.T) {
	dir := t.TempDir()
	name, der := writeKey(t, dir)

	out, _, err := run(t, nil, "classify", name, "-b", dir)
	require.NoError(t, err)
	require.Equal(t, "PrivateKeyInfo\n", out)

	out, _, err = run(t, der, "classify", "-", "-b", dir)
	require.NoError(t, err)
	require.Equal(t, "PrivateKeyInfo\n", out)

	_, _, err = run(t, []byte{0x30, 0x01}, "classify", "-", "-b", dir)
	require.Error(t, err)

	_, _, err = run(t, nil, "classify", "-b", dir)
	require.Error(t, err)
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	name, _ := writeKey(t, dir)

	out, _, err := run(t, nil, "inspect", name, "-b", dir, "-f", "json")
	require.NoError(t, err)
	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Equal(t, "PrivateKeyInfo", report["kind"])
	require.NotEmpty(t, report["fingerprint"])

	outFile := filepath.Join(dir, "report.yaml")
	out, _, err = run(t, nil, "inspect", name, "-b", dir, "-o", outFile)
	require.NoError(t, err)
	require.Empty(t, out)
	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "kind: PrivateKeyInfo")
	require.NotContains(t, string(data), "prime_p")

	out, _, err = run(t, nil, "inspect", name, "-b", dir, "--reveal-private")
	require.NoError(t, err)
	require.Contains(t, out, "prime_p")

	_, _, err = run(t, nil, "inspect", name, "-b", dir, "-f", "xml")
	require.EqualError(t, err, "unknown output format: xml")
}

func TestInspectRandomArt(t *testing.T) {
	saved := isTerminal
	t.Cleanup(func() { isTerminal = saved })
	isTerminal = func(io.Writer) bool { return true }

	dir := t.TempDir()
	name, _ := writeKey(t, dir)

	_, stderr, err := run(t, nil, "inspect", name, "-b", dir)
	require.NoError(t, err)
	require.Contains(t, stderr, "[RSA 2048]")

	_, stderr, err = run(t, nil, "inspect", name, "-b", dir, "--randomart=false")
	require.NoError(t, err)
	require.NotContains(t, stderr, "[RSA 2048]")
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	out, _, err := run(t, nil, "config", "init", "-b", dir, "-f", "json", "-l", "debug")
	require.NoError(t, err)
	require.Contains(t, out, "successfully created")

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	require.Contains(t, string(data), "format: json")
	require.Contains(t, string(data), "log_level: debug")

	name, _ := writeKey(t, dir)
	out, stderr, err := run(t, nil, "inspect", name, "-b", dir)
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(out)))
	require.Contains(t, stderr, "Classified")
}

func TestInspectPublic(t *testing.T) {
	dir := t.TempDir()
	name, der := writeKey(t, dir)
	priv, err := x509.ParsePKCS8PrivateKey(der)
	require.NoError(t, err)
	pub, err := x509.MarshalPKIXPublicKey(priv.(*rsa.PrivateKey).Public())
	require.NoError(t, err)
	pubName := filepath.Join(dir, "key.pub")
	require.NoError(t, os.WriteFile(pubName, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub}), 0600))

	_, _, err = run(t, nil, "inspect", name, "-b", dir, "-p", pubName)
	require.NoError(t, err)

	otherDir := t.TempDir()
	other, _ := writeKey(t, otherDir)
	_, _, err = run(t, nil, "inspect", other, "-b", dir, "-p", pubName)
	require.EqualError(t, err, "inspect: public key doesn't match the private key")
}
