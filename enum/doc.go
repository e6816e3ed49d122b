/*
Package enum provides closed, named sets of constants and the member value objects built from
them.

Sets are the primary focus of this package. A set declares the legal values of a model attribute
once, usually as a package variable, and is then consulted on every read, write and validation of
that attribute. The raw value persisted for an attribute is always a plain lowercase key; the
member object returned to program code wraps that key with the set's type information, ordinal
and owner context.

Sets are immutable after construction. They can be declared in code with New or loaded from a
plain dict literal with ParseSets, which is the form the classy command line tool reads.

A registry maps set keys to sets. Attribute names resolve to sets by convention, the cased
singular form of the attribute, so a registry lookup replaces the dynamic constant lookup a
runtime with open classes would do. The package registry Std is used when no explicit registry
is configured.
*/
package enum
