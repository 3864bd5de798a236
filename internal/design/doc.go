// Package design models nanobot delivery vehicles.
//
// The package turns designer inputs (vehicle size in nm, payload type)
// into an immutable [Nanobot] configuration:
//
//   - [ComputeEfficiency]: expected delivery efficiency with a full
//     factor breakdown (size, payload, environment)
//   - [SelectMechanism]: transport mechanism assigned by vehicle size
//   - [Design]: composes both plus manufacturing design specs
//
// # Example
//
//	bot, err := design.Design(20, design.MRNA)
//	if err != nil {
//	    // size out of range
//	}
//	fmt.Println(bot.Mechanism, bot.Efficiency)
package design
