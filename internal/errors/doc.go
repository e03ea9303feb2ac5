// Package errors is the error taxonomy shared by every layer of rpg-economy.
//
// Every rejection carries a Code. The economy engine returns one of the
// rejection codes below and never applies a partial write before doing so:
//   - OwnerOnly: admin operation invoked by someone other than the contract owner
//   - NotOwner: caller is not the recorded owner (or staker) of the character
//   - NotFound: character or stake record does not exist
//   - InsufficientBalance: a debit would drive a ledger balance negative
//   - AlreadyExists: a character already has an active stake
//
// Creating errors:
//
//	err := errors.NotOwnerf("caller %s does not own character %d", caller, id).
//	    WithMeta("character_id", id)
//
// Wrapping keeps the code of the innermost *Error:
//
//	if err := repo.Append(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to append journal entry")
//	}
//
// Handlers convert with ToGRPCError. The economy code travels in a
// structpb status detail so FromGRPCError restores it exactly, even for
// codes that share a gRPC status (OwnerOnly and NotOwner are both
// PermissionDenied on the wire).
package errors
