// Package quality implements the generator's scenario quality filters:
// minimum legal-action count, minimum unique destinations, maximum
// floor-tile ratio, and a require-non-floor-option check. Each check
// contributes one CheckResult to a Report, the same hard/soft-constraint
// shape used for validating generated structures generally, applied here to
// drafting-snapshot quality instead of spatial structure.
package quality
