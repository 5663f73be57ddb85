// Package homomorphism defines ring-to-ring maps: the identity map, the
// integer-literal embedding every ring carries, and canonical maps that
// rings advertise to each other. See spec.md §4.1's "commuting diagrams"
// law: any two canonical-map chains between the same pair of rings must
// agree on every input.
package homomorphism

import "github.com/aklitzke/algebra-kernel/ring"

// Homomorphism maps elements of Domain into Codomain, preserving +, *, 0, 1.
type Homomorphism interface {
	Domain() ring.Ring
	Codomain() ring.Ring
	Map(x ring.Element) ring.Element
	MulAssignMap(lhs *ring.Element, rhs ring.Element)
}

// CanHomFrom is implemented by a codomain ring S that knows how to answer
// "do you admit a canonical homomorphism from this domain ring R?". A
// positive answer returns an opaque witness token carrying any precomputed
// data the map needs, amortized across every element later mapped with it.
type CanHomFrom interface {
	// HasCanonicalHom returns a witness and true when a canonical
	// homomorphism from `from` into the receiver exists.
	HasCanonicalHom(from ring.Ring) (witness any, ok bool)
	MapIn(from ring.Ring, x ring.Element, witness any) ring.Element
}

// CanonicalIso additionally exposes the inverse direction of a canonical
// homomorphism, turning it into an isomorphism.
type CanonicalIso interface {
	CanHomFrom
	HasCanonicalIso(from ring.Ring) (witness any, ok bool)
	MapOut(from ring.Ring, x ring.Element, witness any) ring.Element
}

// identityHom is the trivial homomorphism R -> R.
type identityHom struct {
	r ring.Ring
}

// Identity returns the identity homomorphism on r.
func Identity(r ring.Ring) Homomorphism {
	return identityHom{r: r}
}

func (h identityHom) Domain() ring.Ring   { return h.r }
func (h identityHom) Codomain() ring.Ring { return h.r }
func (h identityHom) Map(x ring.Element) ring.Element {
	return h.r.CloneEl(x)
}
func (h identityHom) MulAssignMap(lhs *ring.Element, rhs ring.Element) {
	*lhs = h.r.Mul(*lhs, rhs)
}

// intHom is the integer-literal embedding Z -> R every ring carries.
type intHom struct {
	r ring.Ring
}

// IntHom returns the canonical map from 32-bit integer literals into r.
func IntHom(r ring.Ring) Homomorphism {
	return intHom{r: r}
}

func (h intHom) Domain() ring.Ring   { return nil }
func (h intHom) Codomain() ring.Ring { return h.r }
func (h intHom) Map(x ring.Element) ring.Element {
	return h.r.FromInt(x.(int32))
}
func (h intHom) MulAssignMap(lhs *ring.Element, rhs ring.Element) {
	*lhs = h.r.MulInt(*lhs, rhs.(int32))
}

// CanHom bundles a domain/codomain pair together with the witness produced
// by the codomain's HasCanonicalHom, so callers don't have to re-thread it
// through every Map call.
type CanHom struct {
	domain, codomain ring.Ring
	impl             CanHomFrom
	witness          any
}

// TryCanHom looks up a canonical homomorphism from `from` into `to`. It
// returns false when none is advertised.
func TryCanHom(from ring.Ring, to CanHomFrom) (CanHom, bool) {
	w, ok := to.HasCanonicalHom(from)
	if !ok {
		return CanHom{}, false
	}
	return CanHom{domain: from, codomain: to.(ring.Ring), impl: to, witness: w}, true
}

func (h CanHom) Domain() ring.Ring   { return h.domain }
func (h CanHom) Codomain() ring.Ring { return h.codomain }
func (h CanHom) Map(x ring.Element) ring.Element {
	return h.impl.MapIn(h.domain, x, h.witness)
}
func (h CanHom) MulAssignMap(lhs *ring.Element, rhs ring.Element) {
	*lhs = h.codomain.Mul(*lhs, h.Map(rhs))
}

// CanIso bundles a canonical isomorphism the same way CanHom bundles a
// canonical homomorphism.
type CanIso struct {
	domain, codomain ring.Ring
	impl             CanonicalIso
	witness          any
}

// TryCanIso looks up a canonical isomorphism from `from` into `to`.
func TryCanIso(from ring.Ring, to CanonicalIso) (CanIso, bool) {
	w, ok := to.HasCanonicalIso(from)
	if !ok {
		return CanIso{}, false
	}
	return CanIso{domain: from, codomain: to.(ring.Ring), impl: to, witness: w}, true
}

func (i CanIso) Domain() ring.Ring   { return i.domain }
func (i CanIso) Codomain() ring.Ring { return i.codomain }
func (i CanIso) Map(x ring.Element) ring.Element {
	return i.impl.MapIn(i.domain, x, i.witness)
}
func (i CanIso) MulAssignMap(lhs *ring.Element, rhs ring.Element) {
	*lhs = i.codomain.Mul(*lhs, i.Map(rhs))
}

// MapOut applies the inverse direction: codomain -> domain.
func (i CanIso) MapOut(x ring.Element) ring.Element {
	return i.impl.MapOut(i.domain, x, i.witness)
}
