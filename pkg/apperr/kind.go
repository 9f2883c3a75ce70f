package apperr

import (
	"fmt"
	"regexp"
	"sort"
	"sync"
)

// Kind is one known failure condition. Kinds are created once, at package
// initialization, through Catalog.Define and are never modified afterwards.
//
// A *Kind can be used as an errors.Is target to match every error raised for
// that condition.
type Kind struct {
	Code   string
	Name   string
	Domain Domain
	Shape  Shape
	// UserMessage is shown to end users. It may reference numeric limits
	// supplied through Limit as {key} placeholders.
	UserMessage string
}

// Error makes a Kind usable as an errors.Is target.
func (k *Kind) Error() string { return k.Code }

func (k *Kind) Category() Category { return k.Shape.Category }
func (k *Kind) HTTPStatus() int    { return k.Shape.HTTPStatus }
func (k *Kind) Severity() Severity { return k.Shape.Severity }
func (k *Kind) Retryable() bool    { return k.Shape.Retryable }

// subNamespaces are the optional category infixes a code may carry, e.g.
// CHAT-VAL-003.
var subNamespaces = map[string]Category{
	"VAL":  CategoryValidation,
	"PERM": CategoryPermission,
	"BIZ":  CategoryBusiness,
}

var codeSuffix = regexp.MustCompile(`^(?:-(VAL|PERM|BIZ))?-(\d{3})$`)

var registry = struct {
	sync.RWMutex
	byCode  map[string]*Kind
	ordered []*Kind
	retired map[string]Domain
}{
	byCode:  make(map[string]*Kind),
	retired: make(map[string]Domain),
}

// Catalog owns the code namespace of one domain.
type Catalog struct {
	domain Domain
	prefix string

	mu    sync.Mutex
	names map[string]*Kind
	kinds []*Kind
}

// NewCatalog creates the catalog for domain. All codes defined through it
// must start with prefix.
func NewCatalog(domain Domain, prefix string) *Catalog {
	if domain == "" || prefix == "" {
		panic("apperr: catalog needs a domain and a prefix")
	}
	return &Catalog{
		domain: domain,
		prefix: prefix,
		names:  make(map[string]*Kind),
	}
}

// Domain returns the owning domain.
func (c *Catalog) Domain() Domain { return c.domain }

// Prefix returns the code prefix, e.g. "GROUP".
func (c *Catalog) Prefix() string { return c.prefix }

// Retire reserves codes of removed conditions so their suffix is never
// handed out again.
func (c *Catalog) Retire(codes ...string) *Catalog {
	registry.Lock()
	defer registry.Unlock()
	for _, code := range codes {
		c.mustOwn(code)
		if _, ok := registry.byCode[code]; ok {
			panic(fmt.Sprintf("apperr: cannot retire live code %s", code))
		}
		registry.retired[code] = c.domain
	}
	return c
}

// Define registers a new condition. It panics on a duplicate or retired
// code, a duplicate name within the domain, a code outside the catalog's
// namespace, or an empty user message; all of these are programming errors
// that must surface at startup.
func (c *Catalog) Define(code, name string, shape Shape, userMessage string) *Kind {
	c.mustOwn(code)
	if name == "" {
		panic(fmt.Sprintf("apperr: %s has no name", code))
	}
	if userMessage == "" {
		panic(fmt.Sprintf("apperr: %s has no user message", code))
	}
	if shape.Category == "" {
		panic(fmt.Sprintf("apperr: %s has no shape", code))
	}

	k := &Kind{
		Code:        code,
		Name:        name,
		Domain:      c.domain,
		Shape:       shape,
		UserMessage: userMessage,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.names[name]; ok {
		panic(fmt.Sprintf("apperr: name %q already used by %s", name, prev.Code))
	}

	registry.Lock()
	defer registry.Unlock()
	if prev, ok := registry.byCode[code]; ok {
		panic(fmt.Sprintf("apperr: code %s already defined as %s/%s", code, prev.Domain, prev.Name))
	}
	if _, ok := registry.retired[code]; ok {
		panic(fmt.Sprintf("apperr: code %s is retired", code))
	}
	registry.byCode[code] = k
	registry.ordered = append(registry.ordered, k)

	c.names[name] = k
	c.kinds = append(c.kinds, k)
	return k
}

// Kinds returns the catalog's kinds in definition order.
func (c *Catalog) Kinds() []*Kind {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Kind, len(c.kinds))
	copy(out, c.kinds)
	return out
}

func (c *Catalog) mustOwn(code string) {
	if len(code) <= len(c.prefix) || code[:len(c.prefix)] != c.prefix {
		panic(fmt.Sprintf("apperr: code %s outside namespace %s", code, c.prefix))
	}
	if !codeSuffix.MatchString(code[len(c.prefix):]) {
		panic(fmt.Sprintf("apperr: malformed code %s", code))
	}
}

// Kinds returns every registered kind in definition order.
func Kinds() []*Kind {
	registry.RLock()
	defer registry.RUnlock()
	out := make([]*Kind, len(registry.ordered))
	copy(out, registry.ordered)
	return out
}

// KindsOf returns the registered kinds of one domain, sorted by code.
func KindsOf(domain Domain) []*Kind {
	var out []*Kind
	for _, k := range Kinds() {
		if k.Domain == domain {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Lookup finds a kind by code.
func Lookup(code string) (*Kind, bool) {
	registry.RLock()
	defer registry.RUnlock()
	k, ok := registry.byCode[code]
	return k, ok
}

// Retired returns the retired codes, sorted.
func Retired() []string {
	registry.RLock()
	defer registry.RUnlock()
	out := make([]string, 0, len(registry.retired))
	for code := range registry.retired {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Domains returns the domains that have at least one kind, sorted.
func Domains() []Domain {
	seen := make(map[Domain]struct{})
	for _, k := range Kinds() {
		seen[k.Domain] = struct{}{}
	}
	out := make([]Domain, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// subNamespaceOf returns the category implied by a code infix such as
// "-PERM-", if any.
func subNamespaceOf(k *Kind) (Category, bool) {
	m := codeSuffix.FindStringSubmatch(k.Code[prefixLen(k.Code):])
	if m == nil || m[1] == "" {
		return "", false
	}
	cat, ok := subNamespaces[m[1]]
	return cat, ok
}

// prefixLen returns the length of the leading alphabetic prefix of a code.
func prefixLen(code string) int {
	for i, r := range code {
		if r == '-' {
			return i
		}
	}
	return len(code)
}
