package valueobjects

import (
	"regexp"
	"strings"

	apperrors "nftmarket/internal/shared_kernel/errors"

	"golang.org/x/crypto/sha3"
)

var hexAddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// NormalizeAddress canonicalizes an account or contract address to lowercase
// hex for storage and comparison. Mixed-case input must carry a valid EIP-55
// checksum; all-lowercase and all-uppercase hex are accepted as unchecksummed.
func NormalizeAddress(field, address string) (string, *apperrors.AppError) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return "", apperrors.NewValidation(
			"invalid_request",
			field+" is required",
			map[string]any{"field": field},
		)
	}

	if !hexAddressPattern.MatchString(trimmed) {
		return "", apperrors.NewValidation(
			"invalid_request",
			field+" is not a valid address",
			map[string]any{"field": field},
		)
	}

	hexPart := strings.TrimPrefix(trimmed, "0x")
	if hexPart != strings.ToLower(hexPart) && hexPart != strings.ToUpper(hexPart) {
		checksummed, appErr := ToEIP55Checksum(trimmed)
		if appErr != nil {
			return "", appErr
		}
		if checksummed != trimmed {
			return "", apperrors.NewValidation(
				"invalid_request",
				field+" has an invalid EIP-55 checksum",
				map[string]any{"field": field},
			)
		}
	}

	return "0x" + strings.ToLower(hexPart), nil
}

func ToEIP55Checksum(canonical string) (string, *apperrors.AppError) {
	normalized := "0x" + strings.ToLower(strings.TrimSpace(strings.TrimPrefix(canonical, "0x")))
	if !hexAddressPattern.MatchString(normalized) {
		return "", apperrors.NewInternal(
			"address_canonical_invalid",
			"canonical address is invalid",
			map[string]any{"address": canonical},
		)
	}

	hexPart := strings.TrimPrefix(normalized, "0x")
	hash := sha3.NewLegacyKeccak256()
	if _, err := hash.Write([]byte(hexPart)); err != nil {
		return "", apperrors.NewInternal(
			"address_checksum_hash_failed",
			"failed to hash address for checksum",
			map[string]any{"error": err.Error()},
		)
	}
	checksumBytes := hash.Sum(nil)

	out := make([]byte, len(hexPart))
	for i := 0; i < len(hexPart); i++ {
		ch := hexPart[i]
		if ch >= '0' && ch <= '9' {
			out[i] = ch
			continue
		}

		var nibble byte
		if i%2 == 0 {
			nibble = (checksumBytes[i/2] >> 4) & 0x0f
		} else {
			nibble = checksumBytes[i/2] & 0x0f
		}

		if nibble >= 8 {
			out[i] = ch - ('a' - 'A')
		} else {
			out[i] = ch
		}
	}

	return "0x" + string(out), nil
}
