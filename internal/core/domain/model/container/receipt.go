package container

import "packtrack/internal/pkg/errs"

// DeliveryReceipt captures proof of delivery for a container: who received
// it, when and where, with an optional note. Receiver and date are mandatory.
//
// DeliveryReceipt is an immutable value object.
type DeliveryReceipt struct {
	receiver  string
	date      string
	place     string
	note      string
	confirmed bool
}

// NewDeliveryReceipt creates a DeliveryReceipt with validation.
//
// Parameters:
//   - receiver: name of the person who accepted the delivery (required)
//   - date: delivery date as entered (required)
//   - place: delivery location (optional)
//   - note: free-form remark (optional)
func NewDeliveryReceipt(receiver, date, place, note string) (DeliveryReceipt, error) {
	if receiver == "" {
		return DeliveryReceipt{}, errs.NewValueIsRequiredError("receiver")
	}
	if date == "" {
		return DeliveryReceipt{}, errs.NewValueIsRequiredError("delivery date")
	}
	return DeliveryReceipt{
		receiver:  receiver,
		date:      date,
		place:     place,
		note:      note,
		confirmed: true,
	}, nil
}

// Receiver returns the name of the person who accepted the delivery.
func (r DeliveryReceipt) Receiver() string { return r.receiver }

// Date returns the delivery date as entered.
func (r DeliveryReceipt) Date() string { return r.date }

// Place returns the delivery location.
func (r DeliveryReceipt) Place() string { return r.place }

// Note returns the free-form remark.
func (r DeliveryReceipt) Note() string { return r.note }

// Confirmed reports whether the receipt was recorded.
func (r DeliveryReceipt) Confirmed() bool { return r.confirmed }
