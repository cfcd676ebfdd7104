package mmr

/*

# Motivation for the choice of MMR's

Merkle Binary Trees (not tries) are the simplest merkle structure. On its own
this is a great property. Merkle Mountain Ranges are a method of working with
binary merkles that has compelling benefits for the append-only-log use case:

1. The structure is strictly append only and it is easy to prove this is the case
2. The position of a value in the tree is easily provable
3. There are efficient and simple answers for the problem of archiving historic
   state - it is not necessary to maintain the full log in hot storage (or at all)
   forever.
4. This method combines very favourably with the cryptographic accumulator
   technique as
   [discussed](https://ethresear.ch/t/double-batched-merkle-log-accumulator/571)
   by Justin Drake in the context of ethereum.

All of this is achieved mostly due to one simple property: trees only grow to
the right and nothing is ever inserted. The Mountain Range comes from the fact
that this requires us to maintain multiple 'peaks', with previous peaks being
combined as new elements are added. It turns out it is very directly possible
to manage those peaks based on knowing only the total number of elements in
the tree.

# Approach, Sources & Background

The positional arithmetic in position.go follows the nervos merkle-mountain-range
crate rather than the mimblewimble lead used elsewhere in this package's
history: positions are 0-indexed (mimblewimble/grin numbers from 1), which
keeps LeafIndexToPos, HeightOf and Peaks free of the +/-1 adjustments a
1-based scheme needs at every call site.

In summary,

* The post order traversal (children first, left to right) of the MMR is
  identical to the natural append order of MMR nodes.
* Independent of the size of the tree (or its height), we can, from any position,
  'navigate' around the tree using simple binary arithmetic - the number of
  nodes to jump by is always some power of 2 relationship.
* Because navigation is independent of the height and size of the tree we do not
  need to materialise the whole tree, or indeed any of it, in order to work with
  it.
* We define a narrow interface (Reader/Writer, store.go) for appending nodes
  and retrieving nodes based on their position, that permits a variety of
  storage approaches.
* The low level api places a burden of knowledge on the caller in the
  interests of simplicity and efficiency: calling SiblingAndParent for a
  position that is itself already a peak yields nonsense and is not checked.
* MMR and MerkleProof provide the safety rails on top of that low level api.

## Post order traversal

Given a graph of 7 nodes like this,

       g
    c    f
  a   b d  e

The post order is children first, parents 'post', siblings left to right, so
flattening that tree in post order yields the labels above in series:

[a, b, c, d, e, f, g]
[0, 1, 2, 3, 4, 5, 6]

With the MMR's strictly append only nature, and its rule for back filling
earlier peaks, this is the natural order of insertion of an MMR. To jump
around this sequence in post order we can do some fairly straightforward
binary arithmetic, because it is a binary tree.

This implementation draws from the following sources:

* https://github.com/nervosnetwork/merkle-mountain-range
* https://github.com/mimblewimble/grin/blob/0ff6763ee64e5a14e70ddd4642b99789a1648a32/core/src/core/pmmr.rs#L606
* https://github.com/proofchains/python-proofmarshal/blob/master/proofmarshal/mmr.py

Good general backgrounders are:
* https://docs.grin.mw/wiki/chain-state/merkle-mountain-range/
And peter todd's original case for using them in bitcoin:
* https://lists.linuxfoundation.org/pipermail/bitcoin-dev/2016-May/012715.html

## HeightOf

The height of a node in a full binary tree from its postorder traversal
position. This function is the base on which everything else, including the
MMR itself, is built.

We first start by noticing that the insertion order of a node in an MMR is
identical to the height of a node in a binary tree traversed in postorder.
Specifically we want to be able to generate the following sequence:

[0, 0, 1, 0, 0, 1, 2, 0, 0, 1, 0, 0, 1, 2, 3, 0, 0, 1, ...]

Which turns out to start as the heights in the (left, right, top)-postorder
traversal of the following tree:

             3
           /   \
         /       \
       /           \
      2             2
    /  \          /  \
   /    \        /    \
  1      1      1      1
 / \    / \    / \    / \
0   0  0   0  0   0  0   0

To see how to get the height of a node at any position in that sequence, we
start by rewriting the previous tree with the position of every node written
in binary. The height of a node is the number of 1 digits on the leftmost
branch of the tree, minus 1; to get there from an arbitrary position we
repeatedly subtract the largest all-ones value that fits, which is exactly
what HeightOf's loop does.

## KIndex

PositionToKIndex exists for verifiers that cannot or do not want to walk the
tree node by node - a fixed-depth on-chain circuit, for example - and instead
need to know, for a leaf under a given peak, its 0-based index within that
peak's bottom layer plus the peak's height. It walks down from the peak root
bit by bit exactly as HeightOf walks up.

*/
