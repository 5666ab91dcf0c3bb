package trans

// Linkable records one translated function or global variable: the
// buffer index its declaration landed on and the symbol the linker
// must resolve. Entries are never mutated after creation; the fixup
// pass is their only consumer.
type Linkable struct {
	Line    int
	Mangled string
}

// symbolRegistry is the set of per-category name tables the fixup pass
// consumes. Entries are only ever added during translation; C never
// genuinely re-declares a name within one unit, so nothing is removed.
type symbolRegistry struct {
	aggregates   map[string]struct{}
	funcMacros   map[string]struct{}
	linkables    map[string]Linkable
	fields       map[string]int // field spelling -> captured line
	fieldStructs map[string]struct{}
}

func newSymbolRegistry() *symbolRegistry {
	return &symbolRegistry{
		aggregates:   make(map[string]struct{}),
		funcMacros:   make(map[string]struct{}),
		linkables:    make(map[string]Linkable),
		fields:       make(map[string]int),
		fieldStructs: make(map[string]struct{}),
	}
}

func (r *symbolRegistry) rememberAggregate(name string) {
	r.aggregates[name] = struct{}{}
}

func (r *symbolRegistry) rememberFunctionMacro(name string) {
	r.funcMacros[name] = struct{}{}
}

func (r *symbolRegistry) rememberLinkable(name, mangled string, line int) {
	r.linkables[name] = Linkable{Line: line, Mangled: mangled}
}

func (r *symbolRegistry) rememberField(name string, line int) {
	r.fields[name] = line
}

// rememberFieldStruct notes that some field's type references an
// aggregate spelling. C allows such a reference without the aggregate
// ever being defined; the fixup pass synthesizes a stub for those.
func (r *symbolRegistry) rememberFieldStruct(typeSpelling string) {
	r.fieldStructs[typeSpelling] = struct{}{}
}

func (r *symbolRegistry) hasAggregate(name string) bool {
	_, ok := r.aggregates[name]
	return ok
}

func (r *symbolRegistry) hasFunctionMacro(name string) bool {
	_, ok := r.funcMacros[name]
	return ok
}
