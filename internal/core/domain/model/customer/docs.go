// Package customer provides the Customer entity and the loyalty programme.
//
// A Customer is shared between all of its orders: it collects loyalty points
// when orders are paid, keeps the ids of the orders it placed, stores saved
// custom pizzas and receives order status notifications as an observer.
// All methods are safe for concurrent use.
//
// Loyalty tiers are plain data: an ordered table of (minimum points, name,
// discount percentage) resolved by TierFor.
package customer
