// Package directory holds the reference entities parcels point to by id:
// zones, delivery persons, senders, recipients and products.
//
// Their lifecycle is plain CRUD. The lifecycle and statistics code only needs
// existence checks, display names, the delivery person's zone and the
// recipient's email.
package directory
