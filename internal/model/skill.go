package model

// Skills is the fixed list served by the skills endpoint.
var Skills = []string{
	"JavaScript",
	"Node.js",
	"MongoDB",
	"Express.js",
	"HTML/CSS",
	"React",
	"Full Stack Development",
}
