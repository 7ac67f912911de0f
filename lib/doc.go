// Utility functions and types shared by goheap packages and tools.
package lib
