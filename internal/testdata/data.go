package testdata

const data = `{
	"Tracks": [
		{
			"Name": "Guitar",
			"Notes": {
				"72": [
					{"Begin": 1000000000, "End": 1000000000},
					{"Begin": 2000000000, "End": 2000000000},
					{"Begin": 4000000000, "End": 4000000000}
				],
				"73": [
					{"Begin": 2000000000, "End": 2000000000},
					{"Begin": 3000000000, "End": 3000000000}
				],
				"74": [
					{"Begin": 3000000000, "End": 3000000000},
					{"Begin": 5000000000, "End": 5500000000}
				],
				"96": [
					{"Begin": 1000000000, "End": 1000000000}
				]
			}
		},
		{
			"Name": "Bass",
			"Notes": {
				"96": [
					{"Begin": 1000000000, "End": 1000000000},
					{"Begin": 1500000000, "End": 1500000000}
				],
				"97": [
					{"Begin": 2000000000, "End": 2000000000}
				]
			}
		}
	],
	"Beats": [0, 500000000, 1000000000, 1500000000, 2000000000, 2500000000, 3000000000, 3500000000, 4000000000, 4500000000, 5000000000, 5500000000]
}`
