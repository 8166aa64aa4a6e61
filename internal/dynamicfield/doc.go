// Package dynamicfield implements the trail field: a scalar density of
// prior occupancy that decays and diffuses every timestep and biases
// pedestrians toward cells recently vacated by others.
package dynamicfield
