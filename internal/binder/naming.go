package binder

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// Bound-constant names must never collide with anything the caller's
// package declares, including bindings from other packages pasted in by
// hand. A fixed reserved prefix alone cannot guarantee that, so each name
// carries a content hash over the binding's identity. The hash is
// deterministic so generated output is reproducible build to build.
const namingDomain = "nz/binding/v1"

// bindingNamespace is the UUID v5 namespace for binding identities.
var bindingNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/nzgen/nz"))

// bindingIdentity is the canonical byte string naming one binding. All
// parts are NFC normalized first: Go identifiers may contain non-ASCII
// letters, and two visually identical directives must hash identically.
// The null separator prevents boundary ambiguity between domain and data.
func bindingIdentity(pkgPath, tag, name string) []byte {
	data := strings.Join([]string{
		norm.NFC.String(pkgPath),
		norm.NFC.String(tag),
		norm.NFC.String(name),
	}, "\n")

	out := make([]byte, 0, len(namingDomain)+1+len(data))
	out = append(out, namingDomain...)
	out = append(out, 0x00)
	out = append(out, data...)
	return out
}

// boundNameSuffix returns the 8-hex-digit hash suffix for a binding.
func boundNameSuffix(pkgPath, tag, name string) string {
	sum := sha256.Sum256(bindingIdentity(pkgPath, tag, name))
	return hex.EncodeToString(sum[:4])
}

// BindingID returns the deterministic RFC 4122 v5 UUID identifying a
// binding. Stable across runs and machines for the same package path,
// kind and name.
func BindingID(pkgPath, tag, name string) uuid.UUID {
	return uuid.NewSHA1(bindingNamespace, bindingIdentity(pkgPath, tag, name))
}

// namer allocates bound-constant names, disambiguating the (theoretically
// unreachable) case of two distinct bindings hashing to the same name with
// a scope-local monotonic counter.
type namer struct {
	pkgPath string
	taken   map[string]bool
	seq     int
}

func newNamer(pkgPath string) *namer {
	return &namer{pkgPath: pkgPath, taken: make(map[string]bool)}
}

// next returns the unique bound-constant name for a directive.
func (n *namer) next(tag, name string) string {
	base := "_nz_" + name + "_" + boundNameSuffix(n.pkgPath, tag, name)
	bound := base
	for n.taken[bound] {
		n.seq++
		bound = base + "_" + strconv.Itoa(n.seq)
	}
	n.taken[bound] = true
	return bound
}
