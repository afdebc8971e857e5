package games

// Sixteen words are dealt into a 4x4 grid; they secretly form four categories
// of four words each, ranked yellow/green/blue/purple from easiest to trickiest
// The room shares four strikes; a wrong guess burns one, and a guess sharing
// three words with a category is called out as "one away"

// Modes:
// Co-op: everyone works the same grid, and a submission only counts once every
// connected player has selected the identical four words
// Competitive: players are shuffled into 2-4 teams, each dealt its own grid,
// first team to clear all four categories wins the race

// Implementation details:
// - One hub goroutine per room owns all room state
// - Players carry a stable id (cookie) so a dropped connection can rejoin
//   within the grace window without being announced as gone
// - First player to ever join a room is its host; only the host can start
//   or reset games

// How to play
// - Open the room link (or scan its QR code), pick a name, join
// - The host picks a mode and starts; tap four words and submit
// - Solved categories collapse out of the grid; four strikes ends the game
