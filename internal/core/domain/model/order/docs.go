// Package order provides the Order aggregate root of the pizzeria: pricing,
// payment, the lifecycle state machine and the status notification hub.
//
// The package includes:
//   - Order: the aggregate root owning pizzas, totals, payment and status
//   - Status: the formal state machine PLACED -> PREPARING -> OUT_FOR_DELIVERY -> DELIVERED, plus CANCELLED
//   - Tracker and Observer: the append-only status history and its synchronous broadcast
//   - Feedback: the customer's 1 to 5 rating of an order
//   - Summary and Tracking: read models for presentation layers
//   - Snapshot and RestoreOrder: the persisted form of an order
//
// Key business rules:
//   - New orders start in PLACED with the label PENDING_PAYMENT, no pizzas and a zero total
//   - The total is recomputed in full after every change of pizzas, delivery or promotion
//   - An order is paid at most once, and payment freezes pizzas, delivery and promotion
//   - Payment publishes a label and awards floor(total/100) loyalty points; it does not advance the state
//   - Next and Prev on a state without a neighbour are silent no-ops
//   - Every state change or free-form label appends one history entry and
//     notifies each observer once, in registration order, under the order lock
//   - A failing observer is logged and never stops the broadcast
package order
