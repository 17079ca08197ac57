// Package payment models how orders get paid: the Payment aggregate with
// its Pending to final status flow, and the payment methods customers use.
//
// Cash and CreditCard implement the Method interface. The card carries its
// own validation (Luhn check, CVV, expiry, brand detection) and only ever
// exposes masked data for display. Actual charging lives in the services
// layer as payment strategies; this package only holds state.
package payment
