// Package coalesce rewrites a dependency-management list so that every
// version is carried by a named property.
//
// # Overview
//
// A bill of materials pins many artifacts from the same group to the same
// version. Repeating the literal version on every entry makes the document
// noisy and error prone to update. This package replaces each version with a
// `${property}` reference and builds the smallest property table that is
// still faithful to the input:
//
//   - Artifacts of one group that agree on a version share a single
//     `version.<groupId>` property (shared strategy).
//   - When artifacts of a group disagree, each gets its own
//     `version.<groupId>.<artifactId>` property (split strategy).
//
// # Name mapping
//
// Candidate property names can be remapped to configured canonical names
// through [NameMapper]: each canonical name carries a comma-separated list
// of regular expressions, and the first whole-string match (canonical names
// visited in lexicographic order, patterns in configuration order) wins.
// Unmatched candidates pass through unchanged, so the transformation works
// with zero configuration.
//
// Remapping two candidates onto one canonical name is only legal when their
// versions agree. A disagreement is a [ConflictError]; it is never resolved
// silently by picking one of the values.
//
// # Purity
//
// [Coalescer.Transform] never mutates its inputs. It returns a fresh
// dependency slice and a fresh property map, so distinct invocations are safe
// to run concurrently. Versions are treated as opaque tokens; there is no
// range or semver interpretation.
package coalesce
