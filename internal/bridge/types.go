package bridge

import (
	"encoding/json"
	"fmt"
)

// Suit identifies one of the four card suits.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// ParseSuit parses the single-letter wire form of a suit.
func ParseSuit(value string) (Suit, error) {
	switch value {
	case "C":
		return Clubs, nil
	case "D":
		return Diamonds, nil
	case "H":
		return Hearts, nil
	case "S":
		return Spades, nil
	default:
		return 0, fmt.Errorf("invalid suit %q", value)
	}
}

// MarshalText encodes the suit as its single-letter wire form.
func (s Suit) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes the single-letter wire form.
func (s *Suit) UnmarshalText(text []byte) error {
	parsed, err := ParseSuit(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Rank identifies a card rank, ordered Two (lowest) through Ace (highest).
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return string(rune('0' + int(r)))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// ParseRank parses the wire form of a rank (2-9, T, J, Q, K, A).
func ParseRank(value string) (Rank, error) {
	switch value {
	case "2", "3", "4", "5", "6", "7", "8", "9":
		return Rank(value[0] - '0'), nil
	case "T":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	default:
		return 0, fmt.Errorf("invalid rank %q", value)
	}
}

// MarshalText encodes the rank as its wire form.
func (r Rank) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes the wire form of a rank.
func (r *Rank) UnmarshalText(text []byte) error {
	parsed, err := ParseRank(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Seat identifies a player position at the table.
type Seat int

const (
	North Seat = iota
	East
	South
	West
)

// Seats lists all seats in dealing order.
var Seats = [4]Seat{North, East, South, West}

func (s Seat) String() string {
	switch s {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// ParseSeat parses the single-letter wire form of a seat.
func ParseSeat(value string) (Seat, error) {
	switch value {
	case "N":
		return North, nil
	case "E":
		return East, nil
	case "S":
		return South, nil
	case "W":
		return West, nil
	default:
		return 0, fmt.Errorf("invalid seat %q", value)
	}
}

// MarshalText encodes the seat as its single-letter wire form.
func (s Seat) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes the single-letter wire form.
func (s *Seat) UnmarshalText(text []byte) error {
	parsed, err := ParseSeat(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Next returns the seat to the left, following the N→E→S→W rotation.
func (s Seat) Next() Seat {
	return Seats[(int(s)+1)%4]
}

// Partner returns the seat across the table (N↔S, E↔W).
func (s Seat) Partner() Seat {
	return Seats[(int(s)+2)%4]
}

// SameSide reports whether two seats belong to the same partnership.
func SameSide(a, b Seat) bool {
	return a == b || a.Partner() == b
}

// BidSuit names the strain of a contract bid, ordered C < D < H < S < NT.
type BidSuit int

const (
	BidClubs BidSuit = iota
	BidDiamonds
	BidHearts
	BidSpades
	NoTrump
)

// BidSuits lists all strains in ascending bid order.
var BidSuits = [5]BidSuit{BidClubs, BidDiamonds, BidHearts, BidSpades, NoTrump}

func (b BidSuit) String() string {
	switch b {
	case BidClubs:
		return "C"
	case BidDiamonds:
		return "D"
	case BidHearts:
		return "H"
	case BidSpades:
		return "S"
	case NoTrump:
		return "NT"
	default:
		return "?"
	}
}

// ParseBidSuit parses the wire form of a strain (C, D, H, S, NT).
func ParseBidSuit(value string) (BidSuit, error) {
	switch value {
	case "C":
		return BidClubs, nil
	case "D":
		return BidDiamonds, nil
	case "H":
		return BidHearts, nil
	case "S":
		return BidSpades, nil
	case "NT":
		return NoTrump, nil
	default:
		return 0, fmt.Errorf("invalid bid suit %q", value)
	}
}

// MarshalText encodes the strain as its wire form.
func (b BidSuit) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText decodes the wire form of a strain.
func (b *BidSuit) UnmarshalText(text []byte) error {
	parsed, err := ParseBidSuit(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Vulnerability records which partnership is vulnerable for one deal.
type Vulnerability int

const (
	VulnerableNone Vulnerability = iota
	VulnerableNS
	VulnerableEW
	VulnerableBoth
)

func (v Vulnerability) String() string {
	switch v {
	case VulnerableNone:
		return "None"
	case VulnerableNS:
		return "NS"
	case VulnerableEW:
		return "EW"
	case VulnerableBoth:
		return "Both"
	default:
		return "?"
	}
}

// ParseVulnerability parses the wire form (None, NS, EW, Both).
func ParseVulnerability(value string) (Vulnerability, error) {
	switch value {
	case "None":
		return VulnerableNone, nil
	case "NS":
		return VulnerableNS, nil
	case "EW":
		return VulnerableEW, nil
	case "Both":
		return VulnerableBoth, nil
	default:
		return 0, fmt.Errorf("invalid vulnerability %q", value)
	}
}

// MarshalText encodes the vulnerability as its wire form.
func (v Vulnerability) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText decodes the wire form of a vulnerability.
func (v *Vulnerability) UnmarshalText(text []byte) error {
	parsed, err := ParseVulnerability(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Card pairs a suit with a rank. Each of the 52 pairings is unique in a deal.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func (c Card) String() string {
	return c.Suit.String() + c.Rank.String()
}

// Hand holds the cards dealt to one seat. A valid hand has exactly
// HandSize cards; NewHand enforces the size invariant.
type Hand struct {
	Cards []Card `json:"cards"`
}

// HandSize is the number of cards in a bridge hand.
const HandSize = 13

// NewHand validates the card count and returns a hand.
func NewHand(cards []Card) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, InvalidHandSizeError{Count: len(cards)}
	}
	return Hand{Cards: cards}, nil
}

// Deal maps every seat to its hand, covering the 52-card deck exactly once.
type Deal struct {
	Hands         map[Seat]Hand `json:"hands"`
	Dealer        Seat          `json:"dealer"`
	Vulnerability Vulnerability `json:"vulnerability"`
}

// Validate checks that the four hands partition the full deck: four seats,
// thirteen cards each, no card repeated or missing.
func (d Deal) Validate() error {
	seen := make(map[Card]Seat, DeckSize)
	for _, seat := range Seats {
		hand, ok := d.Hands[seat]
		if !ok {
			return fmt.Errorf("deal is missing a hand for seat %s", seat)
		}
		if len(hand.Cards) != HandSize {
			return InvalidHandSizeError{Count: len(hand.Cards)}
		}
		for _, card := range hand.Cards {
			if prev, dup := seen[card]; dup {
				return fmt.Errorf("card %s dealt to both %s and %s", card, prev, seat)
			}
			seen[card] = seat
		}
	}
	if len(seen) != DeckSize {
		return fmt.Errorf("deal has %d distinct cards, expected %d", len(seen), DeckSize)
	}
	return nil
}

// CallType discriminates the closed Call variant.
type CallType int

const (
	CallBid CallType = iota
	CallPass
	CallDouble
	CallRedouble
)

func (t CallType) String() string {
	switch t {
	case CallBid:
		return "bid"
	case CallPass:
		return "pass"
	case CallDouble:
		return "double"
	case CallRedouble:
		return "redouble"
	default:
		return "?"
	}
}

// ParseCallType parses the wire discriminator of a call.
func ParseCallType(value string) (CallType, error) {
	switch value {
	case "bid":
		return CallBid, nil
	case "pass":
		return CallPass, nil
	case "double":
		return CallDouble, nil
	case "redouble":
		return CallRedouble, nil
	default:
		return 0, fmt.Errorf("invalid call type %q", value)
	}
}

// Call is a closed tagged variant: a contract bid carries a level and
// strain; Pass, Double, and Redouble carry no payload.
type Call struct {
	Type   CallType
	Level  int
	Strain BidSuit
}

// Pass, Double, and Redouble are the payload-free calls.
var (
	Pass     = Call{Type: CallPass}
	Double   = Call{Type: CallDouble}
	Redouble = Call{Type: CallRedouble}
)

// Bid builds a contract bid call.
func Bid(level int, strain BidSuit) Call {
	return Call{Type: CallBid, Level: level, Strain: strain}
}

// IsBid reports whether the call is a contract bid.
func (c Call) IsBid() bool {
	return c.Type == CallBid
}

func (c Call) String() string {
	if c.Type == CallBid {
		return fmt.Sprintf("%d%s", c.Level, c.Strain)
	}
	return c.Type.String()
}

type bidWire struct {
	Type   string  `json:"type"`
	Level  int     `json:"level"`
	Strain BidSuit `json:"strain"`
}

type specialWire struct {
	Type string `json:"type"`
}

// MarshalJSON encodes the tagged union: level and strain appear only
// alongside the "bid" discriminator.
func (c Call) MarshalJSON() ([]byte, error) {
	if c.Type == CallBid {
		return json.Marshal(bidWire{Type: "bid", Level: c.Level, Strain: c.Strain})
	}
	return json.Marshal(specialWire{Type: c.Type.String()})
}

// UnmarshalJSON decodes the tagged union.
func (c *Call) UnmarshalJSON(data []byte) error {
	var wire struct {
		Type   string   `json:"type"`
		Level  int      `json:"level"`
		Strain *BidSuit `json:"strain"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	callType, err := ParseCallType(wire.Type)
	if err != nil {
		return err
	}
	if callType == CallBid {
		if wire.Level < 1 || wire.Level > 7 {
			return fmt.Errorf("invalid bid level %d", wire.Level)
		}
		if wire.Strain == nil {
			return fmt.Errorf("bid is missing a strain")
		}
		*c = Bid(wire.Level, *wire.Strain)
		return nil
	}
	*c = Call{Type: callType}
	return nil
}

// AuctionEntry records one call and the seat that made it.
type AuctionEntry struct {
	Seat Seat `json:"seat"`
	Call Call `json:"call"`
}

// Auction is a chronological, append-only log of entries. Appends go
// through the auction engine, which returns a fresh snapshot; a completed
// auction is terminal.
type Auction struct {
	Entries    []AuctionEntry `json:"entries"`
	IsComplete bool           `json:"isComplete"`
}

// Contract is the outcome of a completed auction with at least one bid.
type Contract struct {
	Level     int     `json:"level"`
	Strain    BidSuit `json:"strain"`
	Doubled   bool    `json:"doubled"`
	Redoubled bool    `json:"redoubled"`
	Declarer  Seat    `json:"declarer"`
}

// PlayedCard records one card played to a trick and the seat that played it.
type PlayedCard struct {
	Card Card `json:"card"`
	Seat Seat `json:"seat"`
}

// Trick collects up to four plays. The caller assembles it; the play
// engine only inspects it.
type Trick struct {
	Plays     []PlayedCard `json:"plays"`
	TrumpSuit *Suit        `json:"trumpSuit"`
	Winner    *Seat        `json:"winner"`
}

// SuitLength counts cards per suit, ordered [Spades, Hearts, Diamonds,
// Clubs]. A full hand's counts sum to 13.
type SuitLength [4]int

// SuitOrder is the suit ordering matched by SuitLength indices.
var SuitOrder = [4]Suit{Spades, Hearts, Diamonds, Clubs}

// SuitOrderIndex returns a suit's index within SuitOrder.
func SuitOrderIndex(s Suit) int {
	switch s {
	case Spades:
		return 0
	case Hearts:
		return 1
	case Diamonds:
		return 2
	default:
		return 3
	}
}
