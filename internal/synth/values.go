package synth

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"netsynth/internal/domain"
)

// Resource names used in exhaustion errors.
const (
	resourceVLANIDs  = "VLAN IDs"
	resourceNetworks = "IP networks"
	resourceNames    = "names"
	resourcePorts    = "external ports"
)

// commonPorts are tried in order before falling back to random sampling,
// so small NAT batches look like realistic port-forward sets.
var commonPorts = []int{80, 443, 22, 21, 25, 53, 110, 143, 993, 995, 3389, 5900, 8080, 8443}

const (
	ephemeralPortMin = 1024
	portMax          = 65535
)

// randomVLANID draws a uniform ID from the valid tag range.
func randomVLANID(rng *rand.Rand) int {
	return domain.VLANIDMin + rng.IntN(domain.VLANIDMax-domain.VLANIDMin+1)
}

// randomEgress draws a uniform uplink selector.
func randomEgress(rng *rand.Rand) int {
	return domain.EgressMin + rng.IntN(domain.EgressMax-domain.EgressMin+1)
}

// randomNetwork draws an RFC1918 /24 in placeholder form, choosing one of
// the three private classes uniformly. Compliance is true by construction.
func randomNetwork(rng *rand.Rand) string {
	switch rng.IntN(3) {
	case 0:
		return fmt.Sprintf("10.%d.%d.x", 1+rng.IntN(254), 1+rng.IntN(254))
	case 1:
		return fmt.Sprintf("172.%d.%d.x", 16+rng.IntN(16), 1+rng.IntN(254))
	default:
		return fmt.Sprintf("192.168.%d.x", 1+rng.IntN(254))
	}
}

// randomNetworkCIDR is randomNetwork in canonical "A.B.C.0/24" form.
func randomNetworkCIDR(rng *rand.Rand) string {
	n := randomNetwork(rng)
	return n[:len(n)-1] + "0/24"
}

// randomHostAddress draws a single host address inside a random private /24.
func randomHostAddress(rng *rand.Rand) string {
	n := randomNetwork(rng)
	return fmt.Sprintf("%s%d", n[:len(n)-1], 10+rng.IntN(241))
}

// Name prefixes per record kind, in the style of real device inventories.
var namePrefixes = map[domain.RecordKind][]string{
	domain.KindFirewall: {
		"Allow-Web", "Allow-DNS", "Allow-Mail", "Allow-SSH", "Block-P2P",
		"Block-Telnet", "Allow-API", "Block-SMB", "Allow-NTP", "Block-RDP",
	},
	domain.KindNAT: {
		"Web-Forward", "Mail-Forward", "SSH-Forward", "Game-Server",
		"Camera-Feed", "Media-Server", "VoIP-Trunk", "Backup-Sync",
	},
	domain.KindVPN: {
		"Branch-East", "Branch-West", "Branch-North", "Branch-South",
		"Datacenter-Link", "Partner-Net", "Remote-Office", "Failover-Link",
	},
}

// randomName draws a kind-specific prefix, suffixed with a two-digit number
// about 30% of the time for extra entropy.
func randomName(rng *rand.Rand, kind domain.RecordKind) string {
	prefixes := namePrefixes[kind]
	name := prefixes[rng.IntN(len(prefixes))]
	if rng.IntN(100) < 30 {
		name = fmt.Sprintf("%s-%02d", name, rng.IntN(100))
	}
	return name
}

// fallbackName appends a random unique token, guaranteeing success without
// retry when the name pool budget is spent. Uniqueness here is structural,
// not rejection-sampled, so the result is never pooled.
func fallbackName(rng *rand.Rand, kind domain.RecordKind) string {
	prefixes := namePrefixes[kind]
	return fmt.Sprintf("%s-%s", prefixes[rng.IntN(len(prefixes))], uuid.New().String()[:8])
}

// allocatePort finds an unoccupied external port via three-tier escalation:
// the curated common list in order, then random draws from the ephemeral
// range, then an exhaustive ascending scan. The bias toward common ports is
// the price of guaranteed termination.
func allocatePort(rng *rand.Rand, occupied map[int]struct{}) (int, error) {
	for _, p := range commonPorts {
		if _, taken := occupied[p]; taken {
			continue
		}
		occupied[p] = struct{}{}
		return p, nil
	}
	if p, err := AllocateUnique(resourcePorts, portAttempts, func() int {
		return ephemeralPortMin + rng.IntN(portMax-ephemeralPortMin+1)
	}, occupied); err == nil {
		return p, nil
	}
	for p := 1; p <= portMax; p++ {
		if _, taken := occupied[p]; taken {
			continue
		}
		occupied[p] = struct{}{}
		return p, nil
	}
	return 0, &ResourceExhaustedError{Resource: resourcePorts, Attempts: portAttempts + portMax}
}
