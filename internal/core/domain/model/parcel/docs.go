// Package parcel contains the Parcel aggregate and the volumetric size
// classification used to scale shipment prices.
package parcel
