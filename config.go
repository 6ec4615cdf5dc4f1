package jsoncodec

// FieldNameMapping selects how external object keys map to internal
// camelCase field names and back, per spec.md §4.8.
type FieldNameMapping int

const (
	// Default performs no transformation: external keys are assumed to
	// already be camelCase.
	Default FieldNameMapping = iota
	SnakeCase
	PascalCase
	KebabCase
	CamelCase
	custom
)

// CustomMapping describes a caller-supplied bidirectional transform. Encode
// maps an internal field name to an external key; Decode maps an external
// key back to an internal field name. Both must be supplied and should be
// inverses of one another for round trips to hold.
type CustomMapping struct {
	Encode func(internalName string) string
	Decode func(externalKey string) string
}

// EmptyEncodeAsNull is the {list, tuple, record} triple from spec.md §3: a
// sub-encoder producing empty output within one of these containers is
// rewritten to the literal `null` when the corresponding flag is set,
// otherwise the element/field is omitted entirely.
type EmptyEncodeAsNull struct {
	List   bool
	Tuple  bool
	Record bool
}

// Config is the immutable, four-option configuration handle threaded
// through every encode and decode call. Build one with Configure; a zero
// Config is not valid — always go through Configure so defaults apply.
type Config struct {
	fieldNameMapping      FieldNameMapping
	customMapping         CustomMapping
	skipMissingProperties bool
	nullDecodeAsEmpty     bool
	emptyEncodeAsNull     EmptyEncodeAsNull
}

// Option mutates a Config being built by Configure.
type Option func(*Config)

// WithFieldNameMapping selects one of the built-in bidirectional key
// transforms.
func WithFieldNameMapping(m FieldNameMapping) Option {
	return func(c *Config) { c.fieldNameMapping = m }
}

// WithCustomFieldNameMapping installs a caller-supplied transform pair and
// switches fieldNameMapping to use it.
func WithCustomFieldNameMapping(m CustomMapping) Option {
	return func(c *Config) {
		c.fieldNameMapping = custom
		c.customMapping = m
	}
}

// WithSkipMissingProperties controls whether unknown object fields are
// scanned and discarded (true) or cause the record decode to fail (false).
func WithSkipMissingProperties(v bool) Option {
	return func(c *Config) { c.skipMissingProperties = v }
}

// WithNullDecodeAsEmpty controls whether a literal `null` where a value is
// expected is rewritten to an empty byte sequence before being handed to
// the sub-decoder.
func WithNullDecodeAsEmpty(v bool) Option {
	return func(c *Config) { c.nullDecodeAsEmpty = v }
}

// WithEmptyEncodeAsNull sets the {list, tuple, record} empty-to-null policy.
func WithEmptyEncodeAsNull(v EmptyEncodeAsNull) Option {
	return func(c *Config) { c.emptyEncodeAsNull = v }
}

// Configure builds a Config from defaults (Default, true, true,
// {list:false, tuple:true, record:true}, per spec.md §6) overridden by opts
// in order.
func Configure(opts ...Option) Config {
	c := Config{
		fieldNameMapping:      Default,
		skipMissingProperties: true,
		nullDecodeAsEmpty:     true,
		emptyEncodeAsNull:     EmptyEncodeAsNull{List: false, Tuple: true, Record: true},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// FieldNameMapping reports the configured key-mapping strategy.
func (c Config) FieldNameMapping() FieldNameMapping { return c.fieldNameMapping }

// SkipMissingProperties reports whether unknown fields are tolerated.
func (c Config) SkipMissingProperties() bool { return c.skipMissingProperties }

// NullDecodeAsEmpty reports whether `null` is rewritten to empty input
// before reaching a sub-decoder.
func (c Config) NullDecodeAsEmpty() bool { return c.nullDecodeAsEmpty }

// EmptyEncodeAsNull reports the configured empty-to-null policy.
func (c Config) EmptyEncodeAsNull() EmptyEncodeAsNull { return c.emptyEncodeAsNull }

// EncodeFieldName maps an internal camelCase field name to the external key
// spelling this Config's mapping produces.
func (c Config) EncodeFieldName(internal string) string {
	switch c.fieldNameMapping {
	case SnakeCase:
		return camelToSnake(internal)
	case PascalCase:
		return camelToPascal(internal)
	case KebabCase:
		return camelToKebab(internal)
	case CamelCase, Default:
		return internal
	case custom:
		if c.customMapping.Encode != nil {
			return c.customMapping.Encode(internal)
		}
		return internal
	default:
		return internal
	}
}

// DecodeFieldName maps an external object key back to the internal
// camelCase field name this Config's mapping expects.
func (c Config) DecodeFieldName(external string) string {
	switch c.fieldNameMapping {
	case SnakeCase:
		return snakeToCamel(external)
	case PascalCase:
		return pascalToCamel(external)
	case KebabCase:
		return kebabToCamel(external)
	case CamelCase, Default:
		return external
	case custom:
		if c.customMapping.Decode != nil {
			return c.customMapping.Decode(external)
		}
		return external
	default:
		return external
	}
}
