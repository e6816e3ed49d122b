/*
Package att binds model attributes to enum sets.

A binding wraps one scalar attribute of a model class. It installs an inclusion rule on the
class, materializes the stored raw value into an enum member on every read and normalizes
member inputs back to the canonical key on every write. A binding can also seed a default key
on newly constructed instances. Bindings are created once at class setup and never change.

The package talks to the host model layer through two small interfaces. Store is raw attribute
access on one instance, Class is rule and init hook registration on the class. The Schema and
Doc types implement both for map backed documents and stand in for a full persistence layer in
tests and simple programs.
*/
package att
