// Package menu provides the catalog side of the domain model: menu items and
// the categories that group them. The order subsystem reads menu items to
// resolve authoritative prices and availability at order-creation time but
// never mutates them.
package menu
