// Package errors provides the structured error type used across the progression engine.
//
// Every failure carries a Code, a caller-facing Message, an optional Cause and optional
// metadata. Codes map onto gRPC status codes so the account layer that fronts the engine
// can forward them unchanged.
//
// # Engine taxonomy
//
// The engine distinguishes failures that reject a call from conditions that are part of
// normal play:
//
//   - InvalidArgument: malformed intervals, unknown skills, actions or choices, oversized
//     rosters, companions that cannot be bound. The call is rejected, nothing changes.
//   - OutOfRange: experience or roll accumulation would overflow. The call is rejected.
//   - Aborted: a character queue is already being advanced, or a versioned write lost a race.
//   - NotFound: a character, companion, roster or queue entry does not exist.
//
// Running out of consumables and companions changing owner are not errors. They are
// reported on the advance result as reduced yield.
//
// # Usage
//
//	if in.Duration == 0 {
//	    return nil, errors.InvalidArgument("duration must be positive").
//	        WithMeta("action_id", in.ActionID)
//	}
//
//	out, err := repo.Get(ctx, character.GetInput{ID: id})
//	if err != nil {
//	    return nil, errors.Wrap(err, "failed to load character")
//	}
//
//	if errors.IsNotFound(err) {
//	    // ...
//	}
//
// Dependency checks use the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.CharacterRepo == nil {
//	    vb.RequiredField("CharacterRepo")
//	}
//	return vb.Build()
package errors
