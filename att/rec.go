package att

// Schema collects the rules and init hooks of one document class. It is the Class
// implementation used by the Doc record type; custom model layers provide their own.
type Schema struct {
	name  string
	rules []Rule
	inits []func(Store)
}

// NewSchema returns an empty schema named name.
func NewSchema(name string) *Schema { return &Schema{name: name} }

func (s *Schema) Name() string { return s.name }

// Rules returns all registered rules in declaration order.
func (s *Schema) Rules() []Rule { return s.rules }

func (s *Schema) AddRule(r Rule)        { s.rules = append(s.rules, r) }
func (s *Schema) OnInit(fn func(Store)) { s.inits = append(s.inits, fn) }

// New constructs an empty document and runs the init hooks.
func (s *Schema) New() *Doc { return s.Make(nil) }

// Make constructs a document with initial raw attribute values and then runs the init
// hooks, so hooks see explicitly assigned values and leave them alone.
func (s *Schema) Make(vals map[string]string) *Doc {
	d := s.Load(vals)
	for _, fn := range s.inits {
		fn(d)
	}
	return d
}

// Load wraps existing raw attribute values without running init hooks, the form used for
// records read back from storage.
func (s *Schema) Load(vals map[string]string) *Doc {
	d := &Doc{schema: s, vals: make(map[string]Raw, len(vals))}
	for k, v := range vals {
		d.vals[k] = Str(v)
	}
	return d
}

// Doc is a map backed document record. It implements Store and collects validation errors
// the way a persistence layer would, attributes never written read as absent.
type Doc struct {
	schema *Schema
	vals   map[string]Raw
	errs   []error
}

// Schema returns the document's class schema.
func (d *Doc) Schema() *Schema { return d.schema }

func (d *Doc) ReadRaw(attr string) Raw {
	if raw, ok := d.vals[attr]; ok {
		return raw
	}
	return Null
}

func (d *Doc) WriteRaw(attr string, raw Raw) { d.vals[attr] = raw }

// Validate runs all schema rules against the current raw values and reports whether the
// document is valid. The error collection is rebuilt on every call.
func (d *Doc) Validate() bool {
	d.errs = nil
	for _, r := range d.schema.rules {
		if err := r.Check(d.ReadRaw(r.Attr)); err != nil {
			d.errs = append(d.errs, err)
		}
	}
	return len(d.errs) == 0
}

// Errs returns the validation errors collected by the last Validate call.
func (d *Doc) Errs() []error { return d.errs }
