// Package vocabulary defines the data model for IVOA-style RDF vocabularies:
// references, terms, term graphs, structural flavours, and the violations
// produced when a vocabulary breaks a MUST-level requirement of the
// Vocabularies in the VO recommendation.
//
// A TermGraph is the flavour-neutral in-memory form of one published
// vocabulary. The two permitted structural flavours (informal SKOS concept
// lists vs. strict RDF class/property hierarchies) use different predicates
// for labels, descriptions, and hierarchy edges; the graph builder in package
// rdf normalizes both into the same Term/wider-edge shape so that rule
// evaluation does not need to know which serialization it came from. The
// declared flavour is retained on the graph because it decides which rules
// apply.
package vocabulary
